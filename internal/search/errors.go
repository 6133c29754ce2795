// internal/search/errors.go
package search

import "fmt"

// RequestError is returned when the hosted index answers with a non-2xx status
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("search request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("search request failed: status %d: %s", e.StatusCode, e.Body)
}

// IndexError wraps failures opening or querying the local index
type IndexError struct {
	Path       string
	Underlying error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("local index %s: %v", e.Path, e.Underlying)
}

func (e *IndexError) Unwrap() error {
	return e.Underlying
}
