// Package errors defines the domain error values shared across the
// application. Services return these sentinels so handlers can map them to
// HTTP responses without string matching.
package errors

// DomainError is a coded application error.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
