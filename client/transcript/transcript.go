// Package transcript fetches video caption tracks and flattens them into
// plain text.
package transcript

import (
	"context"
	"errors"
	"strings"
)

// ErrNoCaptions is returned when a video exposes no caption tracks.
var ErrNoCaptions = errors.New("no caption tracks available")

// Snippet is one timed fragment of a video transcript. Start and Duration
// are in seconds.
type Snippet struct {
	Text     string
	Start    float64
	Duration float64
}

// Fetcher retrieves the ordered caption snippets of a video.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) ([]Snippet, error)
}

// Join concatenates snippet texts in sequence order, separated by a single
// space.
func Join(snippets []Snippet) string {
	texts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, " ")
}
