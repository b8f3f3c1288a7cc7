package publisher

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no table prefix matches the request path, or
// when the leftover path segment count disagrees with the entry point's
// required parameter count. Triggers 404 Not Found per RFC 9110
// Section 15.5.5.
var ErrNotFound = errors.New("no page was found")

// ErrMethodNotAllowed is returned when the matched page lacks the entry
// point demanded by the request method. Triggers 405 Method Not Allowed per
// RFC 9110 Section 15.5.6.
var ErrMethodNotAllowed = errors.New("method is not allowed")

func notFound(url string) error {
	return fmt.Errorf("%s not found: %w", url, ErrNotFound)
}

func methodNotAllowed(url, method string) error {
	return fmt.Errorf("%s does not support %s requests: %w", url, method, ErrMethodNotAllowed)
}
