package nav

import (
	"errors"
	"fmt"
)

// ErrLinkOpenFailed matches every *LinkOpenError via errors.Is.
var ErrLinkOpenFailed = errors.New("link open failed")

// LinkOpenError reports that the platform URL handler could not be invoked.
type LinkOpenError struct {
	URL string
	Err error
}

func (e *LinkOpenError) Error() string {
	return fmt.Sprintf("failed to open url %q: %v", e.URL, e.Err)
}

func (e *LinkOpenError) Unwrap() error {
	return e.Err
}

func (e *LinkOpenError) Is(target error) bool {
	return target == ErrLinkOpenFailed
}
