package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	c := require.New(t)

	c.Equal([]int{1, 2, 3}, Unique([]int{1, 2, 2, 3, 1}))
	c.Equal([]string{"b", "a"}, Unique([]string{"b", "a", "b"}))
	c.Equal([]int{}, Unique([]int{}))
}

func TestUniqueUsesReferenceEqualityForPointers(t *testing.T) {
	c := require.New(t)

	type node struct{ id string }
	a, b := &node{id: "x"}, &node{id: "x"}

	unique := Unique([]*node{a, b, a})
	c.Len(unique, 2)
	c.Same(a, unique[0])
	c.Same(b, unique[1])
}

func TestUniqueBy(t *testing.T) {
	c := require.New(t)

	unique := UniqueBy([]string{"Ajua", "AJUA", "pokt"}, strings.ToLower)
	c.Equal([]string{"Ajua", "pokt"}, unique)
}

func TestIntersection(t *testing.T) {
	c := require.New(t)

	c.Equal([]int{2, 3}, Intersection([]int{1, 2, 3}, []int{2, 3, 4}))
	c.Equal([]int{2, 2, 3}, Intersection([]int{2, 1, 2, 3}, []int{3, 2}))
	c.Equal([]int{}, Intersection([]int{1}, []int(nil)))
}

func TestDifference(t *testing.T) {
	c := require.New(t)

	c.Equal([]int{1}, Difference([]int{1, 2, 3}, []int{2, 3, 4}))
	c.Equal([]int{1, 1}, Difference([]int{1, 2, 1}, []int{2}))
	c.Equal([]int{1, 2}, Difference([]int{1, 2}, []int(nil)))
}

func TestIntersectionAndDifferenceBy(t *testing.T) {
	c := require.New(t)

	a := []string{"Relay", "node", "SESSION"}
	b := []string{"relay", "session"}
	c.Equal([]string{"Relay", "SESSION"}, IntersectionBy(a, b, strings.ToLower))
	c.Equal([]string{"node"}, DifferenceBy(a, b, strings.ToLower))
}

func TestSliceToSet(t *testing.T) {
	c := require.New(t)

	set := SliceToSet([]string{"a", "b", "a"}, identity[string])
	c.Len(set, 2)
	c.Contains(set, "a")
	c.Contains(set, "b")
}
