package bitset

import (
	"math/bits"
)

// BITS is the number of positions a BitSet can hold, one bit per letter position of a word.
const BITS = 16

// BitSet is a fixed width set of letter positions.  It is a value type, all operations
// return a new set and never modify the receiver.
type BitSet uint16

// allBits has every bit set
const allBits BitSet = 0xffff

func New(positions ...uint) BitSet {
	var b BitSet
	for _, p := range positions {
		b = b.Set(p)
	}
	return b
}

func (b BitSet) Set(i uint) BitSet {
	if i >= BITS {
		panic("Do not support that many bits")
	}
	return b | 1<<i
}

func (b BitSet) Test(i uint) bool {
	return i < BITS && b&(1<<i) != 0
}

// Intersection of base set and other set
// This is the BitSet equivalent of & (and)
func (b BitSet) Intersection(compare BitSet) BitSet {
	return b & compare
}

// Difference of base set and other set
// This is the BitSet equivalent of &^ (and not)
func (b BitSet) Difference(compare BitSet) BitSet {
	return b &^ compare
}

// Count (number of set bits).
// Also known as "popcount" or "population count".
func (b BitSet) Count() int {
	return bits.OnesCount16(uint16(b))
}

func (b BitSet) None() bool {
	return b == 0
}

// SetAll returns the set of positions 0..length-1
func SetAll(length uint) BitSet {
	if length > BITS {
		panic("Do not support that many bits")
	}
	return allBits >> (BITS - length)
}

// NextSet returns the next bit set from the specified index,
// including possibly the current index
// along with an error code (true = valid, false = no set bit found)
// for i,e := v.NextSet(0); e; i,e = v.NextSet(i + 1) {...}
func (b BitSet) NextSet(i uint) (uint, bool) {
	if i >= BITS {
		return 0, false
	}
	word := b >> i
	if word == 0 {
		return 0, false
	}
	return i + uint(bits.TrailingZeros16(uint16(word))), true
}

// Range iterates the set positions in ascending order.
func (b BitSet) Range(yield func(i int, position uint) bool) {
	i := 0
	for p, ok := b.NextSet(0); ok; p, ok = b.NextSet(p + 1) {
		if !yield(i, p) {
			return
		}
		i++
	}
}
