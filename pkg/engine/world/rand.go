package world

// Rand is the source of randomness used by generation and spawning.
// *math/rand.Rand satisfies it, so callers seed their own generator.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// ShuffledCardinals returns N, E, S, W in a random order drawn from rng
func ShuffledCardinals(rng Rand) [4]Direction {
	dirs := Cardinals()
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}
