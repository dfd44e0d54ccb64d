// Package client is a thin Go SDK for the YouTube Data, Reporting and
// Analytics APIs. One generic invoker executes every operation declared in
// the catalog package; there is no per-endpoint method surface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/universal-mcp/youtube/client/catalog"
	"github.com/universal-mcp/youtube/client/transcript"
)

// DefaultBaseURL is the upstream API base every operation path is resolved
// against.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

const defaultHTTPTimeout = 30 * time.Second

// Client invokes YouTube API operations declared in the catalog. Each
// invocation is a stateless request/response cycle; the client holds no
// cross-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	apiKey     string
	authToken  string
	debug      bool
	fetcher    transcript.Fetcher

	rc *resty.Client
}

// New constructs a Client. Options are applied in order; an invalid option
// panics since it is always a programming error.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: defaultHTTPTimeout,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	if c.fetcher == nil {
		c.fetcher = transcript.NewWatchPageFetcher()
	}

	rc := resty.New()
	if c.httpClient != nil {
		rc = resty.NewWithClient(c.httpClient)
	}
	rc.SetBaseURL(c.baseURL).SetTimeout(c.timeout)
	if c.apiKey != "" {
		// Auth ownership stays in the HTTP collaborator: the key rides
		// along as a client-level query parameter on every request.
		rc.SetQueryParam("key", c.apiKey)
	}
	if c.authToken != "" {
		rc.SetAuthToken(c.authToken)
	}
	if c.debug {
		rc.SetDebug(true)
	}
	c.rc = rc

	return c
}

// BaseURL returns the API base URL the client resolves operation paths
// against.
func (c *Client) BaseURL() string { return c.baseURL }

// Operations returns the full catalog of invocable operations. This is the
// discovery surface consumed by the MCP registrar and the CLI.
func (c *Client) Operations() []catalog.Endpoint {
	return catalog.All()
}

// Call invokes the named operation with the given arguments.
//
// Required path parameters must be present and non-nil; a violation fails
// with *MissingParamError before any network I/O. Remaining arguments must
// be recognized optional parameters of the operation; entries with a nil
// value are dropped and never appear on the wire. Exactly one network call
// is issued per invocation, with no retries.
//
// On a 2xx response the raw JSON body is returned; an empty body yields a
// nil RawMessage. Any other status fails with *UpstreamError carrying the
// status code and raw body.
func (c *Client) Call(ctx context.Context, op string, args map[string]any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ep, ok := catalog.Lookup(op)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	path := ep.Path
	for _, p := range ep.Required {
		v, present := args[p]
		if !present || v == nil {
			return nil, &MissingParamError{Op: op, Param: p}
		}
		s, err := stringifyArg(op, p, v)
		if err != nil {
			return nil, err
		}
		path = strings.ReplaceAll(path, "{"+p+"}", url.PathEscape(s))
	}

	query := make(map[string]string)
	for k, v := range args {
		if ep.IsRequired(k) {
			continue
		}
		if !ep.IsOptional(k) {
			return nil, fmt.Errorf("%s: unknown parameter %q", op, k)
		}
		if v == nil {
			continue
		}
		s, err := stringifyArg(op, k, v)
		if err != nil {
			return nil, err
		}
		query[k] = s
	}

	start := time.Now()
	resp, err := c.dispatch(ctx, ep.Method, path, query)
	if err != nil {
		apiRequestFailures.WithLabelValues(op).Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	apiRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	apiRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode())).Inc()

	if !resp.IsSuccess() {
		return nil, &UpstreamError{Op: op, StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: invalid JSON in response body", op)
	}
	return json.RawMessage(body), nil
}

// dispatch issues the single HTTP call for an invocation.
func (c *Client) dispatch(ctx context.Context, method, path string, query map[string]string) (*resty.Response, error) {
	req := c.rc.R().SetContext(ctx).SetQueryParams(query)
	switch method {
	case http.MethodGet:
		return req.Get(path)
	case http.MethodPost:
		// The upstream shim always posts an empty JSON object.
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(json.RawMessage(`{}`)).
			Post(path)
	case http.MethodDelete:
		return req.Delete(path)
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}
}

// Transcript fetches the caption transcript of a video and returns it as a
// single string, snippet texts joined by spaces in chronological order. Any
// fetch failure, including a fetch that yields zero snippets, fails with
// *TranscriptUnavailableError wrapping the cause.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if videoID == "" {
		return "", &MissingParamError{Op: "get_video_transcript", Param: "videoId"}
	}

	start := time.Now()
	snippets, err := c.fetcher.Fetch(ctx, videoID)
	if err != nil {
		apiRequestFailures.WithLabelValues("get_video_transcript").Inc()
		return "", &TranscriptUnavailableError{VideoID: videoID, Err: err}
	}
	if len(snippets) == 0 {
		apiRequestFailures.WithLabelValues("get_video_transcript").Inc()
		return "", &TranscriptUnavailableError{VideoID: videoID, Err: transcript.ErrNoCaptions}
	}
	apiRequestDuration.WithLabelValues("get_video_transcript").Observe(time.Since(start).Seconds())

	return transcript.Join(snippets), nil
}

// stringifyArg renders a scalar argument as its query-string value. Booleans
// and numbers keep their natural textual form; explicitly set empty strings
// are passed through, the server is the validation authority.
func stringifyArg(op, param string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("%s: parameter %q has unsupported type %T", op, param, v)
	}
}
