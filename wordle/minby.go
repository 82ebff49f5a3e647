package wordle

import (
	"golang.org/x/exp/constraints"
)

// firstMin returns the index and key of the first element with the smallest key, -1 for an
// empty slice.  Later elements with an equal key never replace an earlier one.
func firstMin[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) (int, K) {
	var minKey K
	if len(slice) == 0 {
		return -1, minKey
	}
	minIndex := 0
	minKey = keyFunc(slice[0])
	for i := 1; i < len(slice); i++ {
		if key := keyFunc(slice[i]); key < minKey {
			minIndex, minKey = i, key
		}
	}
	return minIndex, minKey
}
