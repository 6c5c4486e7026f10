// Package spawn places enemies without repeating a cell.
//
// A Bag walks a random permutation of [0, count) lazily: it steps a cursor
// through the integers modulo the smallest prime P >= count with a fixed
// stride that is never a multiple of P, so every residue is visited exactly
// once per cycle. Residues in [count, P) are skipped. Nothing is allocated
// per item, which keeps sampling a handful of spawn cells from a large map
// cheap.
package spawn

import "haex/pkg/engine/world"

// Bag lazily yields every integer in [0, count) exactly once in random order
type Bag struct {
	count    int
	prime    int
	skip     int
	cursor   int
	returned int
}

// NewBag draws a stride from rng and returns a bag over [0, count).
// A negative count is treated as zero.
func NewBag(count int, rng world.Rand) *Bag {
	count = max(count, 0)
	prime := NextPrime(count)

	// a*count^2 + b*count + c, reduced mod prime at every step so large
	// counts cannot overflow
	cm := count % prime
	sq := cm * cm % prime
	skip := 0
	for skip == 0 {
		a := rng.Intn(prime) + 1
		b := rng.Intn(prime) + 1
		c := rng.Intn(prime) + 1
		skip = (a*sq%prime + b*cm%prime + c) % prime
	}

	return &Bag{
		count: count,
		prime: prime,
		skip:  skip,
	}
}

// Len returns how many values the bag yields in total
func (b *Bag) Len() int {
	return b.count
}

// Remaining returns how many values are still to come
func (b *Bag) Remaining() int {
	return b.count - b.returned
}

// Next returns the next value, or false once all count values were produced
func (b *Bag) Next() (int, bool) {
	if b.returned >= b.count {
		return 0, false
	}
	for {
		b.cursor = (b.cursor + b.skip) % b.prime
		if b.cursor < b.count {
			break
		}
	}
	b.returned++
	return b.cursor, true
}

// IsPrime reports whether n is prime using 6k±1 trial division
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime greater than or equal to n
func NextPrime(n int) int {
	if n < 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}
	return n
}
