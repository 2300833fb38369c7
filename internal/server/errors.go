// Package server provides the HTTP API for the portfolio generator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/fetch"
	"github.com/jonathan/portfolio-generator/internal/ingestion"
	"github.com/jonathan/portfolio-generator/internal/rendering"
)

// ErrNoDatabase is returned by endpoints that need the template store when
// the server runs without one.
var ErrNoDatabase = errors.New("no database configured")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a stored record was not found
type ErrNotFound struct {
	Kind string
	Name string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		notFoundErr   *ErrNotFound
		tooLargeErr   *ingestion.InputTooLargeError
		documentErr   *ingestion.DocumentError
		fetchErr      *fetch.Error
		templateErr   *rendering.TemplateError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, db.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.As(err, &tooLargeErr), errors.Is(err, fetch.ErrResponseTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &documentErr), errors.Is(err, ingestion.ErrContentExtractionFailed):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr), errors.Is(err, ingestion.ErrHTTPRequestFailed):
		return http.StatusBadGateway
	case errors.As(err, &templateErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNoDatabase):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
