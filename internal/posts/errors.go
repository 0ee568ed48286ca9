package posts

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested post does not exist.
var ErrNotFound = errors.New("post not found")

// StatusError is returned for non-2xx responses other than 404.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("posts API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("posts API returned status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err means the post does not exist, as opposed
// to a transport or server failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
