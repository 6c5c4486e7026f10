package spawn

import (
	"math/rand"
	"testing"

	"haex/pkg/engine/world"
)

func drain(b *Bag) []int {
	var out []int
	for v, ok := b.Next(); ok; v, ok = b.Next() {
		out = append(out, v)
	}
	return out
}

func assertPermutation(t *testing.T, count int, values []int) {
	t.Helper()
	if len(values) != count {
		t.Fatalf("bag of %d yielded %d values", count, len(values))
	}
	seen := make([]bool, count)
	for _, v := range values {
		if v < 0 || v >= count {
			t.Fatalf("bag of %d yielded out of range value %d", count, v)
		}
		if seen[v] {
			t.Fatalf("bag of %d yielded %d twice", count, v)
		}
		seen[v] = true
	}
}

func TestBag_Permutation(t *testing.T) {
	// 50 plus primes, squares of primes and the degenerate sizes
	for _, count := range []int{0, 1, 2, 3, 4, 9, 25, 49, 50, 97, 100, 121} {
		for seed := int64(0); seed < 5; seed++ {
			b := NewBag(count, rand.New(rand.NewSource(seed)))
			assertPermutation(t, count, drain(b))
			if b.Remaining() != 0 {
				t.Errorf("bag of %d has %d remaining after drain", count, b.Remaining())
			}
			if _, ok := b.Next(); ok {
				t.Errorf("bag of %d kept yielding after exhaustion", count)
			}
		}
	}
}

func TestBag_LargeCount(t *testing.T) {
	const count = 3_000_000
	for seed := int64(0); seed < 5; seed++ {
		b := NewBag(count, rand.New(rand.NewSource(seed)))
		seen := make(map[int]bool)
		for i := 0; i < 1000; i++ {
			v, ok := b.Next()
			if !ok {
				t.Fatalf("seed %d: bag exhausted after %d values", seed, i)
			}
			if v < 0 || v >= count {
				t.Fatalf("seed %d: value %d outside [0, %d)", seed, v, count)
			}
			if seen[v] {
				t.Fatalf("seed %d: value %d repeated", seed, v)
			}
			seen[v] = true
		}
	}
}

func TestBag_SameSeedSameOrder(t *testing.T) {
	a := drain(NewBag(50, rand.New(rand.NewSource(1))))
	same := drain(NewBag(50, rand.New(rand.NewSource(1))))
	for i := range a {
		if a[i] != same[i] {
			t.Fatalf("same seed gave different order at %d", i)
		}
	}
}

func TestIsPrime(t *testing.T) {
	naive := func(n int) bool {
		if n < 2 {
			return false
		}
		for d := 2; d < n; d++ {
			if n%d == 0 {
				return false
			}
		}
		return true
	}
	for n := -1; n <= 400; n++ {
		if IsPrime(n) != naive(n) {
			t.Errorf("IsPrime(%d) = %v", n, IsPrime(n))
		}
	}
	for _, n := range []int{25, 49, 121, 169} {
		if IsPrime(n) {
			t.Errorf("IsPrime(%d) = true for a prime square", n)
		}
	}
}

func TestNextPrime(t *testing.T) {
	cases := map[int]int{0: 2, 1: 2, 2: 2, 24: 29, 25: 29, 49: 53, 50: 53, 97: 97}
	for n, want := range cases {
		if got := NextPrime(n); got != want {
			t.Errorf("NextPrime(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestSpawner_ExcludesPlayerSquare(t *testing.T) {
	g, _ := world.NewGrid[world.DirectionBits](10, 10)
	player := world.C(4, 4)
	exclude := Around(g, player, PlayerExclusion)
	spawns := NewSpawner(g, 1000, exclude, rand.New(rand.NewSource(7))).Collect()
	if len(spawns) != 100-25 {
		t.Errorf("got %d spawns, want %d", len(spawns), 100-25)
	}
	for _, c := range spawns {
		if c.Chebyshev(player) <= PlayerExclusion {
			t.Errorf("spawn %s is within %d of the player", c, PlayerExclusion)
		}
	}
}

func TestSpawner_Max(t *testing.T) {
	g, _ := world.NewGrid[bool](5, 5)
	spawns := NewSpawner(g, 3, nil, rand.New(rand.NewSource(0))).Collect()
	if len(spawns) != 3 {
		t.Errorf("got %d spawns, want 3", len(spawns))
	}
	seen := map[world.Coord]bool{}
	for _, c := range spawns {
		if seen[c] {
			t.Errorf("duplicate spawn %s", c)
		}
		seen[c] = true
	}
}

func TestSpawner_EndsEarlyWhenFiltered(t *testing.T) {
	g, _ := world.NewGrid[bool](3, 3)
	// the player square covers the whole map
	spawns := NewSpawner(g, 5, Around(g, world.C(1, 1), PlayerExclusion), rand.New(rand.NewSource(0))).Collect()
	if len(spawns) != 0 {
		t.Errorf("got %d spawns on a fully excluded map", len(spawns))
	}
}
