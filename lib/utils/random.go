package utils

import (
	"encoding/hex"
	"math"
	"time"

	"github.com/Pocket/global-utils/common/environment"
	"golang.org/x/exp/rand"
)

// Source is the random number generator the randomness helpers draw from
type Source interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

type globalSource struct{}

func (globalSource) Intn(n int) int   { return rand.Intn(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource is backed by the package level generator and is safe for
// concurrent use
var DefaultSource Source = globalSource{}

func init() {
	seed := environment.GetUint64("RANDOM_SEED", 0)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rand.Seed(seed)
}

// NewSource returns a deterministic Source seeded with the given value, it is
// not safe for concurrent use
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// RandomElement returns an element of items chosen uniformly at random
func RandomElement[T any](items []T) (T, error) {
	return RandomElementWith(DefaultSource, items)
}

// RandomElementWith is RandomElement drawing from src
func RandomElementWith[T any](src Source, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, invalidArgument("items", ExpectedNonEmptySequence, items)
	}

	return items[src.Intn(len(items))], nil
}

// RandomIntInRange returns an integer uniformly distributed over [min, max]
func RandomIntInRange(min, max int) (int, error) {
	return RandomIntInRangeWith(DefaultSource, min, max)
}

// RandomIntInRangeWith is RandomIntInRange drawing from src
func RandomIntInRangeWith(src Source, min, max int) (int, error) {
	if min > max {
		return 0, invalidArgument("min", ExpectedValidRange, [2]int{min, max})
	}

	// spans wider than 2^53 only reach integers representable as float64
	span := float64(max) - float64(min) + 1
	value := math.Floor(src.Float64()*span) + float64(min)
	if value >= math.MaxInt {
		return max, nil
	}

	n := int(value)
	switch {
	case n > max:
		return max, nil
	case n < min:
		return min, nil
	}
	return n, nil
}

// RandomHex returns a random hexadecimal string of n bytes
func RandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
