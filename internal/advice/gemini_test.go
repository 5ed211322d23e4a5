package advice

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestNewGeminiAdvisorRequiresKey(t *testing.T) {
	if _, err := NewGeminiAdvisor(GeminiOptions{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGeminiAdvisorSuccess(t *testing.T) {
	var captured *http.Request
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		captured = r
		return fakeResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Eat more protein."}]}}]}`), nil
	})}
	g, err := NewGeminiAdvisor(GeminiOptions{APIKey: "k", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiAdvisor error: %v", err)
	}

	got, err := g.Advise(context.Background(), "how do I bulk?", "Client: Omar.")
	if err != nil {
		t.Fatalf("Advise error: %v", err)
	}
	if got != "Eat more protein." {
		t.Fatalf("advice = %q", got)
	}
	if captured.Header.Get("x-goog-api-key") != "k" {
		t.Fatal("api key header missing")
	}
	if !strings.Contains(captured.URL.Path, "gemini-2.5-flash:generateContent") {
		t.Fatalf("path = %q, want default model endpoint", captured.URL.Path)
	}
}

func TestGeminiAdvisorDegradesOnTransportError(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	g, err := NewGeminiAdvisor(GeminiOptions{APIKey: "k", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiAdvisor error: %v", err)
	}

	got, err := g.Advise(context.Background(), "q", "")
	if err != nil {
		t.Fatalf("Advise must not surface transport errors, got %v", err)
	}
	if got != degradedResponse {
		t.Fatalf("advice = %q, want degraded response", got)
	}
}

func TestGeminiAdvisorDegradesOnHTTPError(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return fakeResponse(http.StatusForbidden, `{"error":{"message":"key invalid"}}`), nil
	})}
	g, err := NewGeminiAdvisor(GeminiOptions{APIKey: "bad", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiAdvisor error: %v", err)
	}

	got, err := g.Advise(context.Background(), "q", "")
	if err != nil {
		t.Fatalf("Advise error: %v", err)
	}
	if got != degradedResponse {
		t.Fatalf("advice = %q, want degraded response", got)
	}
}

func TestGeminiAdvisorEmptyCandidates(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return fakeResponse(http.StatusOK, `{"candidates":[]}`), nil
	})}
	g, err := NewGeminiAdvisor(GeminiOptions{APIKey: "k", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiAdvisor error: %v", err)
	}

	got, err := g.Advise(context.Background(), "q", "")
	if err != nil {
		t.Fatalf("Advise error: %v", err)
	}
	if got != emptyResponse {
		t.Fatalf("advice = %q, want empty-response message", got)
	}
}

func TestGeminiAdvisorChainsFallback(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("down")
	})}
	g, err := NewGeminiAdvisor(GeminiOptions{APIKey: "k", HTTPClient: client, Fallback: NewStaticAdvisor()})
	if err != nil {
		t.Fatalf("NewGeminiAdvisor error: %v", err)
	}

	got, err := g.Advise(context.Background(), "leg day", "")
	if err != nil {
		t.Fatalf("Advise error: %v", err)
	}
	if !strings.Contains(got, "offline mode") || !strings.Contains(got, `"leg day"`) {
		t.Fatalf("advice = %q, want static fallback mentioning the query", got)
	}
}

func TestStaticAdvisorEchoesQuery(t *testing.T) {
	got, err := NewStaticAdvisor().Advise(context.Background(), "cutting tips", "ignored")
	if err != nil {
		t.Fatalf("Advise error: %v", err)
	}
	if !strings.Contains(got, `"cutting tips"`) {
		t.Fatalf("advice = %q, want the query echoed", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt("question", "context line")
	want := "User Context: context line\n\nUser Question: question"
	if got != want {
		t.Fatalf("prompt = %q, want %q", got, want)
	}
}
