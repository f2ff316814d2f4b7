package utils

import "golang.org/x/exp/constraints"

// Quicksort returns the elements of items in non-decreasing order.
//
// The last element is the pivot, smaller elements go left and everything else,
// equal elements included, goes right. Inputs of length 0 or 1 are returned as
// is, longer ones produce a new slice and items is left untouched. Sorted and
// reverse sorted inputs hit the O(n^2) worst case.
func Quicksort[T constraints.Ordered](items []T) []T {
	if len(items) <= 1 {
		return items
	}

	pivot := items[len(items)-1]
	left := make([]T, 0, len(items)-1)
	right := make([]T, 0, len(items)-1)
	for _, item := range items[:len(items)-1] {
		if item < pivot {
			left = append(left, item)
		} else {
			right = append(right, item)
		}
	}

	sorted := make([]T, 0, len(items))
	sorted = append(sorted, Quicksort(left)...)
	sorted = append(sorted, pivot)
	sorted = append(sorted, Quicksort(right)...)
	return sorted
}

// Min returns the smaller of a and b
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
