package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeminiGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.0-flash:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var payload geminiPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		if payload.GenerationConfig.ResponseMimeType != structuredMimeType {
			t.Errorf("expected JSON mime type, got %q", payload.GenerationConfig.ResponseMimeType)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"dailySchedule\":[]}"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key")
	c.baseURL = srv.URL + "/"

	got, err := c.Generate(context.Background(), Request{UserPrompt: "schedule please"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != `{"dailySchedule":[]}` {
		t.Errorf("unexpected content %q", got)
	}
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("test-key")
	c.baseURL = srv.URL + "/"

	_, err := c.Generate(context.Background(), Request{UserPrompt: "schedule"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGeminiGenerateMissingKey(t *testing.T) {
	c := NewGeminiClient("")
	_, err := c.Generate(context.Background(), Request{UserPrompt: "schedule"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
