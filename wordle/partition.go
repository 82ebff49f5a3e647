package wordle

import (
	"sort"
)

// Partition groups candidate secrets by the feedback a guess would get against them.
// Keys are kept in the order they were first seen, words within a bucket in the order added.
type Partition struct {
	guess  Word
	keys   []Feedback
	values map[Feedback][]Word
}

// NewPartition splits candidates by their feedback against guess.  Every candidate lands in
// exactly one bucket.
func NewPartition(guess Word, candidates []Word) *Partition {
	ret := &Partition{
		guess:  guess,
		keys:   make([]Feedback, 0),
		values: make(map[Feedback][]Word),
	}
	for _, secret := range candidates {
		ret.Set(ComputeFeedback(guess, secret), secret)
	}
	return ret
}

func (p *Partition) Guess() Word {
	return p.guess
}

// Set appends a word to the bucket of the given feedback.
func (p *Partition) Set(key Feedback, word Word) {
	if _, ok := p.values[key]; !ok {
		// Key does not exist, so add it to the keys slice.
		p.keys = append(p.keys, key)
		p.values[key] = make([]Word, 0, 1)
	}
	p.values[key] = append(p.values[key], word)
}

// Get retrieves the bucket for the feedback.
func (p *Partition) Get(key Feedback) ([]Word, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Len returns the number of buckets.
func (p *Partition) Len() int {
	return len(p.keys)
}

// Keys returns the feedback in the order first seen.
func (p *Partition) Keys() []Feedback {
	return p.keys
}

// SortedKeys returns the feedback in canonical order, ascending Feedback.Key.
func (p *Partition) SortedKeys() []Feedback {
	keys := make([]Feedback, len(p.keys))
	copy(keys, p.keys)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Key() < keys[j].Key()
	})
	return keys
}

// Range loops through the buckets in canonical order:
//
//	for feedback, bucket := range partition.Range {...}
func (p *Partition) Range(yield func(key Feedback, values []Word) bool) {
	for _, key := range p.SortedKeys() {
		if !yield(key, p.values[key]) {
			return
		}
	}
}

// Largest is the size of the biggest bucket, the worst case number of candidates left.
func (p *Partition) Largest() int {
	largest := 0
	for _, values := range p.values {
		largest = max(largest, len(values))
	}
	return largest
}

// SumSquares is the sum of the squared bucket sizes.  Divided by the number of candidates it
// is the expected number of candidates left when every candidate is equally likely.
func (p *Partition) SumSquares() int {
	sum := 0
	for _, values := range p.values {
		sum += len(values) * len(values)
	}
	return sum
}

// Size is the total number of words in all buckets.
func (p *Partition) Size() int {
	size := 0
	for _, values := range p.values {
		size += len(values)
	}
	return size
}
