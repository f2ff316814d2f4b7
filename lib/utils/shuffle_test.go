package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestShuffleInPlace(t *testing.T) {
	c := require.New(t)

	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := slices.Clone(items)

	shuffled := Shuffle(items)
	c.Same(&items[0], &shuffled[0])
	c.Len(shuffled, len(original))
	c.ElementsMatch(original, items)
}

func TestShuffleKeepsNamedSliceType(t *testing.T) {
	c := require.New(t)

	type nodes []string
	items := nodes{"a", "b", "c"}

	shuffled := ShuffleWith(NewSource(3), items)
	c.IsType(nodes{}, shuffled)
	c.ElementsMatch([]string{"a", "b", "c"}, []string(shuffled))
}

func TestShuffleEmpty(t *testing.T) {
	c := require.New(t)

	c.Empty(Shuffle([]int{}))
	c.Nil(Shuffle[[]int](nil))
}

// The forward swap-with-any-index shuffle is biased: over three elements it
// yields 27 equally likely swap sequences spread over 6 permutations.
func TestShuffleIsBiased(t *testing.T) {
	c := require.New(t)

	const trials = 270000
	counts := map[string]int{}
	src := NewSource(1)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(ShuffleWith(src, []int{0, 1, 2}))]++
	}

	c.Len(counts, 6)
	for _, frequent := range []string{"[0 2 1]", "[1 0 2]", "[1 2 0]"} {
		c.Greater(counts[frequent], 47000, frequent)
	}
	for _, rare := range []string{"[0 1 2]", "[2 0 1]", "[2 1 0]"} {
		c.Less(counts[rare], 43000, rare)
	}
}

func TestShuffleString(t *testing.T) {
	c := require.New(t)

	shuffled := ShuffleString("abc")
	c.Len(shuffled, 3)
	c.ElementsMatch([]rune("abc"), []rune(shuffled))

	shuffled = ShuffleStringWith(NewSource(5), "héllo wörld")
	c.ElementsMatch([]rune("héllo wörld"), []rune(shuffled))

	c.Equal("", ShuffleString(""))
	c.Equal("x", ShuffleString("x"))
}

func TestShuffleStringIsUniform(t *testing.T) {
	c := require.New(t)

	const trials = 60000
	counts := map[string]int{}
	src := NewSource(1)
	for i := 0; i < trials; i++ {
		counts[ShuffleStringWith(src, "abc")]++
	}

	c.Len(counts, 6)
	for permutation, count := range counts {
		c.InDelta(trials/6, count, 500, permutation)
	}
}
