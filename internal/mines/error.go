package mines

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error kind the engine produces. It is
// returned before any state is touched, so retrying with the same input is
// pointless.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
