package tmdb

import "fmt"

// HTTPError is a non-2xx response from the TMDB API.
type HTTPError struct {
	StatusCode int
	Status     string // reason phrase, e.g. "Not Found"
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("TMDB API error: %d - %s", e.StatusCode, e.Status)
}

// ParseError is a response body that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("TMDB response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError is a parsed response that does not match the expected shape.
// The wrapped validation error carries the offending path and expected type.
type SchemaError struct {
	Schema string // schema name, e.g. "movie_details"
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("TMDB response does not match %s schema: %v", e.Schema, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
