package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestServer(t *testing.T, status int, body string, inspect func(r *http.Request, payload map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(raw, &payload)
		if inspect != nil {
			inspect(r, payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sampleRequest() CompletionRequest {
	return CompletionRequest{
		Model: "gpt-4o",
		Messages: []Message{
			{Role: "system", Content: "persona"},
			{Role: "user", Content: "hola"},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	}
}

func TestHTTPClientComplete_SendsRequestAndReturnsContent(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any
	srv := newTestServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"  hi there "}}]}`, func(r *http.Request, payload map[string]any) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotPayload = payload
	})

	c := NewHTTPClient(srv.URL+"/v1/", "sk-test", zap.NewNop())
	out, err := c.Complete(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "  hi there " {
		t.Fatalf("expected raw content, got %q", out)
	}
	if gotPath != "/v1/chat/completions" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotPayload["model"] != "gpt-4o" {
		t.Fatalf("unexpected model %v", gotPayload["model"])
	}
	if gotPayload["max_tokens"] != float64(150) || gotPayload["temperature"] != 0.7 {
		t.Fatalf("unexpected generation params: %v", gotPayload)
	}
	msgs, ok := gotPayload["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %v", gotPayload["messages"])
	}
	first := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "persona" {
		t.Fatalf("unexpected first message %v", first)
	}
}

func TestHTTPClientComplete_APIErrorMessage(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided"}}`, nil)

	c := NewHTTPClient(srv.URL, "bad", nil)
	_, err := c.Complete(context.Background(), sampleRequest())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Fatalf("expected provider message in error, got %q", err.Error())
	}
}

func TestHTTPClientComplete_APIErrorWithoutBody(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `upstream down`, nil)

	c := NewHTTPClient(srv.URL, "k", nil)
	_, err := c.Complete(context.Background(), sampleRequest())
	if err == nil || err.Error() != "llm http error: status=502" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestHTTPClientComplete_NoChoices(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"choices":[]}`, nil)

	c := NewHTTPClient(srv.URL, "k", nil)
	_, err := c.Complete(context.Background(), sampleRequest())
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestHTTPClientComplete_NullContent(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":null}}]}`, nil)

	c := NewHTTPClient(srv.URL, "k", nil)
	_, err := c.Complete(context.Background(), sampleRequest())
	if !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestHTTPClientComplete_EmptyContentIsValid(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":""}}]}`, nil)

	c := NewHTTPClient(srv.URL, "k", nil)
	out, err := c.Complete(context.Background(), sampleRequest())
	if err != nil || out != "" {
		t.Fatalf("expected empty content without error, got %q, %v", out, err)
	}
}

func TestHTTPClientComplete_MalformedJSON(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"choices":`, nil)

	c := NewHTTPClient(srv.URL, "k", nil)
	_, err := c.Complete(context.Background(), sampleRequest())
	if err == nil || !strings.Contains(err.Error(), "unmarshal response") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestHTTPClientComplete_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewHTTPClient(srv.URL, "k", nil)
	_, err := c.Complete(ctx, sampleRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNewHTTPClient_NoClientLevelTimeout(t *testing.T) {
	c := NewHTTPClient("", "k", nil)
	if c.client.Timeout != 0 {
		t.Fatalf("expected ctx to own the deadline, got client timeout %s", c.client.Timeout)
	}
	if c.baseURL != "https://api.openai.com/v1" {
		t.Fatalf("unexpected default base url %q", c.baseURL)
	}
}
