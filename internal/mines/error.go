package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParams = errors.New("invalid board params")
	ErrOutOfBounds   = errors.New("cell index out of bounds")
)

type BoundsError struct {
	Index, Len int
}

// [BoundsError] implements [error]
func (e BoundsError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrOutOfBounds, e.Index, e.Len)
}

func (e BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
