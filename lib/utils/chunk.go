package utils

import (
	"math"

	"golang.org/x/exp/slices"
)

// Chunk splits items into consecutive slices of size elements, the last one
// holding the remainder. Chunks are copies and do not alias items.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, invalidArgument("size", ExpectedPositiveSize, size)
	}

	count := len(items) / size
	if len(items)%size != 0 {
		count++
	}

	chunks := make([][]T, 0, count)
	for start := 0; start < len(items); {
		end := start + Min(size, len(items)-start)
		chunks = append(chunks, slices.Clone(items[start:end]))
		start = end
	}
	return chunks, nil
}

// ChunkFloat is Chunk for a fractional size. Window i spans
// [trunc(i*size), trunc((i+1)*size)), so chunk([1 2 3], 1.5) is [[1] [2 3]]
// and sizes below 1 interleave empty chunks. Sizes far below 1 produce about
// len(items)/size chunks.
func ChunkFloat[T any](items []T, size float64) ([][]T, error) {
	if math.IsNaN(size) || size <= 0 {
		return nil, invalidArgument("size", ExpectedPositiveSize, size)
	}

	n := float64(len(items))
	chunks := make([][]T, 0)
	for start := 0.0; start < n; start += size {
		end := len(items)
		if next := start + size; next < n {
			end = int(next)
		}
		chunks = append(chunks, slices.Clone(items[int(start):end]))

		// no progress left at this magnitude
		if start+size == start {
			break
		}
	}
	return chunks, nil
}
