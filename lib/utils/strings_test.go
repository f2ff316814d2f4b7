package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	c := require.New(t)

	c.Equal("Hello world", Capitalize("  hELLO world  "))
	c.Equal("Ajua", Capitalize("AJUA"))
	c.Equal("Élan", Capitalize("élAN"))
	c.Equal("1abc", Capitalize("1ABC"))
	c.Equal("", Capitalize("   "))
	c.Equal("", Capitalize(""))
}

func TestEllipsify(t *testing.T) {
	c := require.New(t)

	c.Equal("abc...", Ellipsify(EllipsifyParams{Text: "abcdef", Length: 3}))
	c.Equal("ab", Ellipsify(EllipsifyParams{Text: "ab", Length: 5}))
	c.Equal("abc", Ellipsify(EllipsifyParams{Text: "abc", Length: 3}))
	c.Equal("...", Ellipsify(EllipsifyParams{Text: "abc", Length: 0}))
	c.Equal("", Ellipsify(EllipsifyParams{Text: "", Length: 0}))
	c.Equal("ñandú...", Ellipsify(EllipsifyParams{Text: "ñandú café", Length: 5}))
	c.Equal("abc", Ellipsify(EllipsifyParams{Text: "abc", Length: math.MaxInt}))
}

func TestEllipsifyNegativeLength(t *testing.T) {
	c := require.New(t)

	c.Equal("abcd...", Ellipsify(EllipsifyParams{Text: "abcdef", Length: -2}))
	c.Equal("ñan...", Ellipsify(EllipsifyParams{Text: "ñandú", Length: -2}))
	c.Equal("...", Ellipsify(EllipsifyParams{Text: "ab", Length: -5}))
	c.Equal("...", Ellipsify(EllipsifyParams{Text: "", Length: -1}))
	c.Equal("...", Ellipsify(EllipsifyParams{Text: "abc", Length: math.MinInt}))
}
