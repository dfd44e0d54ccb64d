package client

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned when Call is given an operation name that
// is not present in the catalog.
var ErrUnknownOperation = errors.New("unknown operation")

// MissingParamError reports a required path parameter that was absent or
// null. It is raised before any network call is attempted.
type MissingParamError struct {
	Op    string
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Op, e.Param)
}

// UpstreamError reports a non-2xx response from the YouTube API. Status code
// and raw body are preserved untransformed; the call is never retried.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream status %d: %s", e.Op, e.StatusCode, e.Body)
}

// TranscriptUnavailableError reports that caption retrieval failed for a
// video. It wraps the root cause; a transcript request never silently
// returns partial or empty text.
type TranscriptUnavailableError struct {
	VideoID string
	Err     error
}

func (e *TranscriptUnavailableError) Error() string {
	return fmt.Sprintf("transcript unavailable for video %q: %v", e.VideoID, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TranscriptUnavailableError) Unwrap() error {
	return e.Err
}
