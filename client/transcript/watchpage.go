package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultWatchBaseURL = "https://www.youtube.com"

// WatchPageFetcher is the default Fetcher. It loads the public watch page of
// a video, extracts the caption track listing embedded in the page, then
// downloads and decodes the timedtext document of the best-matching track.
type WatchPageFetcher struct {
	rc    *resty.Client
	langs []string
}

// FetcherOption configures a WatchPageFetcher.
type FetcherOption func(*WatchPageFetcher)

// WithLanguages sets the preferred caption languages in preference order.
// When no track matches, the first available track is used.
func WithLanguages(langs ...string) FetcherOption {
	return func(f *WatchPageFetcher) {
		f.langs = append(f.langs, langs...)
	}
}

// WithBaseURL overrides the watch page base URL.
func WithBaseURL(u string) FetcherOption {
	return func(f *WatchPageFetcher) {
		f.rc.SetBaseURL(u)
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *WatchPageFetcher) {
		base := f.rc.BaseURL
		f.rc = resty.NewWithClient(hc).SetBaseURL(base)
	}
}

// NewWatchPageFetcher constructs a WatchPageFetcher.
func NewWatchPageFetcher(opts ...FetcherOption) *WatchPageFetcher {
	f := &WatchPageFetcher{
		rc: resty.New().
			SetBaseURL(defaultWatchBaseURL).
			SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// captionTrack mirrors one entry of the captionTracks array embedded in the
// watch page player response.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// Fetch implements Fetcher.
func (f *WatchPageFetcher) Fetch(ctx context.Context, videoID string) ([]Snippet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.rc.R().
		SetContext(ctx).
		SetQueryParam("v", videoID).
		Get("/watch")
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	if !page.IsSuccess() {
		return nil, fmt.Errorf("fetch watch page: status %d", page.StatusCode())
	}

	tracks, err := extractCaptionTracks(page.String())
	if err != nil {
		return nil, err
	}
	track := pickTrack(tracks, f.langs)

	// Track URLs are absolute; resty ignores the base URL for them.
	data, err := f.rc.R().SetContext(ctx).Get(track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track: %w", err)
	}
	if !data.IsSuccess() {
		return nil, fmt.Errorf("fetch caption track: status %d", data.StatusCode())
	}

	return decodeTimedText(data.Body())
}

// extractCaptionTracks locates the "captionTracks" array inside the watch
// page markup and decodes it. The array is found with a balanced-bracket
// scan so the surrounding player response does not need to be parsed.
func extractCaptionTracks(page string) ([]captionTrack, error) {
	const marker = `"captionTracks":`
	i := strings.Index(page, marker)
	if i < 0 {
		return nil, ErrNoCaptions
	}
	rest := page[i+len(marker):]
	start := strings.Index(rest, "[")
	if start < 0 {
		return nil, ErrNoCaptions
	}

	depth := 0
	inString := false
	escaped := false
	for j := start; j < len(rest); j++ {
		c := rest[j]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				var tracks []captionTrack
				if err := json.Unmarshal([]byte(rest[start:j+1]), &tracks); err != nil {
					return nil, fmt.Errorf("decode caption tracks: %w", err)
				}
				if len(tracks) == 0 {
					return nil, ErrNoCaptions
				}
				return tracks, nil
			}
		}
	}
	return nil, ErrNoCaptions
}

// pickTrack returns the first track matching the preferred languages, in
// preference order, falling back to the first track.
func pickTrack(tracks []captionTrack, langs []string) captionTrack {
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t
			}
		}
	}
	return tracks[0]
}

// timedText mirrors the timedtext XML document of a caption track.
type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextNode `xml:"text"`
}

type timedTextNode struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func decodeTimedText(raw []byte) ([]Snippet, error) {
	var doc timedText
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode timedtext: %w", err)
	}
	snippets := make([]Snippet, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		snippets = append(snippets, Snippet{
			Text:     html.UnescapeString(t.Body),
			Start:    t.Start,
			Duration: t.Dur,
		})
	}
	return snippets, nil
}
