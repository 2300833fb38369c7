// Package ingestion turns resume documents into clean plain text.
package ingestion

import "fmt"

// DocumentError reports a document that could not be read or converted to
// text.
type DocumentError struct {
	Source  string
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not read document %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("could not read document %s: %s", e.Source, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// InputTooLargeError reports a document over the configured size cap.
type InputTooLargeError struct {
	Source string
	Size   int64
	Limit  int64
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %s is %d bytes (limit %d)", e.Source, e.Size, e.Limit)
}
