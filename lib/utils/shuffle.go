package utils

// Shuffle permutes items in place and returns the same slice, so the caller's
// slice is consumed rather than copied.
//
// Each position i, walking forward, is swapped with a position drawn from the
// whole slice. This naive variant does not produce uniform permutations (for
// three items some orders come up 5/27 of the time and others 4/27).
func Shuffle[S ~[]T, T any](items S) S {
	return ShuffleWith(DefaultSource, items)
}

// ShuffleWith is Shuffle drawing from src
func ShuffleWith[S ~[]T, T any](src Source, items S) S {
	for i := range items {
		j := src.Intn(len(items))
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// ShuffleString returns a uniformly random anagram of text, shuffling runes
// with Fisher-Yates
func ShuffleString(text string) string {
	return ShuffleStringWith(DefaultSource, text)
}

// ShuffleStringWith is ShuffleString drawing from src
func ShuffleStringWith(src Source, text string) string {
	runes := []rune(text)
	for i := len(runes) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
