package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedWorkoutType is returned when a package code names no known variant
	ErrUnsupportedWorkoutType = errors.New("unsupported workout type")

	// ErrArity is returned when a package carries the wrong number of values
	ErrArity = errors.New("wrong number of sensor values")

	ErrNonPositiveDuration = errors.New("duration must be > 0")
	ErrNonPositiveHeight   = errors.New("height must be > 0")
	ErrNegativeAction      = errors.New("action count must be >= 0")
	ErrNegativePoolCount   = errors.New("pool count must be >= 0")
	ErrNotInteger          = errors.New("value must be a whole number")
	ErrOutOfRange          = errors.New("value is out of range")
)

// UnsupportedTypeError carries the code that failed to dispatch
type UnsupportedTypeError struct {
	Code string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("тренировка %s не реализована", e.Code)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedWorkoutType
}

// ArityError reports a package whose value count does not match its variant
type ArityError struct {
	Type Type
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d sensor values, got %d", e.Type, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}
