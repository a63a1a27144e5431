package client

import "fmt"

// StatusError reports a response whose status differs from the single success
// code its endpoint accepts. Body holds the raw response text, which is the
// only diagnostic acme-dns gives on API-level failures.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// MissingEnvError names a required environment variable that was not set.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variable " + e.Name
}
