package collection

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable marks a source directory that is missing, not a
// directory, or cannot be read.
var ErrSourceUnavailable = errors.New("source unavailable")

func sourceUnavailable(source string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source, err)
	}
	return fmt.Errorf("%w: %s", ErrSourceUnavailable, source)
}
