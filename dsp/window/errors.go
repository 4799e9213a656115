package window

import (
	"errors"
	"fmt"
)

var (
	errUnknownType      = errors.New("window type is not supported")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}
