package utils

import (
	"fmt"

	"github.com/Pocket/global-utils/lib/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Expectation describes what an argument was required to be
type Expectation string

const (
	ExpectedNonEmptySequence Expectation = "non-empty sequence"
	ExpectedSequence         Expectation = "sequence"
	ExpectedNumeric          Expectation = "numeric value"
	ExpectedText             Expectation = "text value"
	ExpectedValidRange       Expectation = "valid range (min <= max)"
	ExpectedPositiveSize     Expectation = "positive size"
)

var (
	// ErrInvalidArgument is matched by every argument validation failure
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidArgumentError carries which argument failed validation and what was
// expected of it
type InvalidArgumentError struct {
	Argument string
	Expected Expectation
	Value    any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: expected %s, got %v", e.Argument, e.Expected, e.Value)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// invalidArgument reports the failure on the diagnostic logger and returns it
func invalidArgument(argument string, expected Expectation, value any) error {
	err := &InvalidArgumentError{
		Argument: argument,
		Expected: expected,
		Value:    value,
	}

	logger.Log.WithFields(log.Fields{
		"argument": argument,
		"expected": string(expected),
		"value":    fmt.Sprintf("%v", value),
	}).Error(err.Error())

	return err
}
