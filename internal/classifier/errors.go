package classifier

import (
	"errors"
	"strconv"
)

// ErrInvalidInput matches every InvalidInputError via errors.Is
var ErrInvalidInput = errors.New("invalid strength value")

// InvalidInputError reports a value that is not a real number
type InvalidInputError struct {
	Value float64
}

func (e *InvalidInputError) Error() string {
	return ErrInvalidInput.Error() + ": " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
