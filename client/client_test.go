package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/universal-mcp/youtube/client/transcript"
)

// recorder captures the requests a test server received.
type recorder struct {
	calls  int32
	method string
	path   string
	rawURL string
	query  url.Values
	body   string
}

func (r *recorder) callCount() int { return int(atomic.LoadInt32(&r.calls)) }

// newTestClient returns a client pointed at a stub server that responds
// with the given status and body, plus a recorder of what it received.
func newTestClient(t *testing.T, status int, respBody string, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&rec.calls, 1)
		rec.method = req.Method
		rec.path = req.URL.EscapedPath()
		rec.rawURL = req.URL.String()
		rec.query = req.URL.Query()
		b, _ := io.ReadAll(req.Body)
		rec.body = string(b)
		if respBody != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(ts.Close)

	opts = append([]Option{WithBaseURL(ts.URL)}, opts...)
	return New(opts...), rec
}

func TestCall_MissingRequiredParam(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_jobs_job_reports", map[string]any{
		"pageSize": "10",
	})

	var mpe *MissingParamError
	if !errors.As(err, &mpe) {
		t.Fatalf("expected MissingParamError, got %v", err)
	}
	if mpe.Param != "jobId" {
		t.Fatalf("expected param jobId, got %q", mpe.Param)
	}
	if rec.callCount() != 0 {
		t.Fatalf("expected no network call, got %d", rec.callCount())
	}
}

func TestCall_NilRequiredParamIsMissing(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_captions", map[string]any{"id": nil})

	var mpe *MissingParamError
	if !errors.As(err, &mpe) || mpe.Param != "id" {
		t.Fatalf("expected MissingParamError for id, got %v", err)
	}
	if rec.callCount() != 0 {
		t.Fatalf("expected no network call, got %d", rec.callCount())
	}
}

func TestCall_UnknownOperation(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_nonexistent", nil)
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
	if rec.callCount() != 0 {
		t.Fatalf("expected no network call, got %d", rec.callCount())
	}
}

func TestCall_UnknownParameter(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_jobs", map[string]any{"bogus": "1"})
	if err == nil {
		t.Fatal("expected error for unknown parameter")
	}
	if rec.callCount() != 0 {
		t.Fatalf("expected no network call, got %d", rec.callCount())
	}
}

func TestCall_OmitsUnsetOptionals(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_jobs", map[string]any{
		"pageSize":  "5",
		"pageToken": nil,
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got := rec.query.Get("pageSize"); got != "5" {
		t.Fatalf("expected pageSize=5, got %q", got)
	}
	if _, present := rec.query["pageToken"]; present {
		t.Fatalf("pageToken must not appear in query string, got %q", rec.rawURL)
	}
}

func TestCall_StringifiesScalarArgs(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_activities", map[string]any{
		"mine":       true,
		"maxResults": float64(25),
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got := rec.query.Get("mine"); got != "true" {
		t.Fatalf("expected mine=true, got %q", got)
	}
	if got := rec.query.Get("maxResults"); got != "25" {
		t.Fatalf("expected maxResults=25, got %q", got)
	}
}

func TestCall_UnsupportedArgType(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_jobs", map[string]any{
		"pageSize": []string{"5"},
	})
	if err == nil {
		t.Fatal("expected error for non-scalar parameter")
	}
	if rec.callCount() != 0 {
		t.Fatalf("expected no network call, got %d", rec.callCount())
	}
}

func TestCall_NonOKStatuses(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		c, rec := newTestClient(t, status, `{"error":"nope"}`)

		_, err := c.Call(context.Background(), "get_channels", map[string]any{"part": "snippet"})

		var ue *UpstreamError
		if !errors.As(err, &ue) {
			t.Fatalf("status %d: expected UpstreamError, got %v", status, err)
		}
		if ue.StatusCode != status {
			t.Fatalf("expected status %d, got %d", status, ue.StatusCode)
		}
		if ue.Body != `{"error":"nope"}` {
			t.Fatalf("expected raw body preserved, got %q", ue.Body)
		}
		if rec.callCount() != 1 {
			t.Fatalf("expected exactly one call, got %d", rec.callCount())
		}
	}
}

func TestCall_ReturnsDecodedJSONUnchanged(t *testing.T) {
	t.Parallel()
	body := `{"kind":"youtube#channelListResponse","items":[{"id":"UC123"}],"pageInfo":{"totalResults":1}}`
	c, _ := newTestClient(t, http.StatusOK, body)

	raw, err := c.Call(context.Background(), "get_channels", map[string]any{"mine": "true"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	var got, want map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if err := json.Unmarshal([]byte(body), &want); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("response altered\nwant: %v\n got: %v", want, got)
	}
}

func TestCall_EmptyBodySuccess(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusNoContent, "")

	raw, err := c.Call(context.Background(), "delete_videos", map[string]any{"id": "abc"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil RawMessage for empty body, got %q", raw)
	}
	if rec.method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", rec.method)
	}
}

func TestCall_PostSendsEmptyObjectBody(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "add_videos_rate", map[string]any{
		"id":     "abc",
		"rating": "like",
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if rec.method != http.MethodPost {
		t.Fatalf("expected POST, got %s", rec.method)
	}
	if rec.body != "{}" {
		t.Fatalf("expected empty JSON object body, got %q", rec.body)
	}
	if got := rec.query.Get("rating"); got != "like" {
		t.Fatalf("expected rating=like, got %q", got)
	}
}

func TestCall_PathParamSubstitution(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Call(context.Background(), "get_jobs_job_reports_report", map[string]any{
		"jobId":    "job-1",
		"reportId": "rep 2",
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if rec.path != "/v1/jobs/job-1/reports/rep%202" {
		t.Fatalf("unexpected path %q", rec.path)
	}
}

func TestCall_CtxCanceled(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Call(ctx, "get_jobs", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if rec.callCount() != 0 {
		t.Fatalf("expected no network call, got %d", rec.callCount())
	}
}

func TestCall_APIKeyQueryParam(t *testing.T) {
	t.Parallel()
	c, rec := newTestClient(t, http.StatusOK, `{}`, WithAPIKey("secret-key"))

	if _, err := c.Call(context.Background(), "get_jobs", nil); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got := rec.query.Get("key"); got != "secret-key" {
		t.Fatalf("expected key query param, got %q", got)
	}
}

// stubFetcher is a transcript collaborator test double.
type stubFetcher struct {
	snippets []transcript.Snippet
	err      error
}

func (s *stubFetcher) Fetch(ctx context.Context, videoID string) ([]transcript.Snippet, error) {
	return s.snippets, s.err
}

func TestTranscript_JoinsSnippets(t *testing.T) {
	t.Parallel()
	c := New(WithTranscriptFetcher(&stubFetcher{snippets: []transcript.Snippet{
		{Text: "Hello", Start: 0, Duration: 1.5},
		{Text: "world", Start: 1.5, Duration: 1.2},
	}}))

	text, err := c.Transcript(context.Background(), "vid123")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if text != "Hello world" {
		t.Fatalf("expected %q, got %q", "Hello world", text)
	}
}

func TestTranscript_FetcherError(t *testing.T) {
	t.Parallel()
	cause := errors.New("no captions")
	c := New(WithTranscriptFetcher(&stubFetcher{err: cause}))

	_, err := c.Transcript(context.Background(), "vid123")

	var tue *TranscriptUnavailableError
	if !errors.As(err, &tue) {
		t.Fatalf("expected TranscriptUnavailableError, got %v", err)
	}
	if tue.VideoID != "vid123" {
		t.Fatalf("expected video id in error, got %q", tue.VideoID)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestTranscript_EmptyResultIsUnavailable(t *testing.T) {
	t.Parallel()
	c := New(WithTranscriptFetcher(&stubFetcher{}))

	_, err := c.Transcript(context.Background(), "vid123")

	var tue *TranscriptUnavailableError
	if !errors.As(err, &tue) {
		t.Fatalf("expected TranscriptUnavailableError, got %v", err)
	}
	if !errors.Is(err, transcript.ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions cause, got %v", err)
	}
}

func TestTranscript_EmptyVideoID(t *testing.T) {
	t.Parallel()
	c := New(WithTranscriptFetcher(&stubFetcher{}))

	_, err := c.Transcript(context.Background(), "")

	var mpe *MissingParamError
	if !errors.As(err, &mpe) || mpe.Param != "videoId" {
		t.Fatalf("expected MissingParamError for videoId, got %v", err)
	}
}
