package transcript

import "testing"

func TestJoin(t *testing.T) {
	t.Parallel()
	snippets := []Snippet{
		{Text: "Hello", Start: 0, Duration: 1.5},
		{Text: "world", Start: 1.5, Duration: 1.2},
	}
	if got := Join(snippets); got != "Hello world" {
		t.Fatalf("expected %q, got %q", "Hello world", got)
	}
}

func TestJoin_Empty(t *testing.T) {
	t.Parallel()
	if got := Join(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestJoin_SingleSnippet(t *testing.T) {
	t.Parallel()
	if got := Join([]Snippet{{Text: "solo"}}); got != "solo" {
		t.Fatalf("expected %q, got %q", "solo", got)
	}
}
