package extract

import (
	"errors"
	"testing"
)

func TestExtractPlainObject(t *testing.T) {
	got, err := Extract(`{"healthScore":82,"analysis":"good"}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got["healthScore"].(float64) != 82 {
		t.Errorf("expected healthScore 82, got %v", got["healthScore"])
	}
}

func TestExtractProseWrapped(t *testing.T) {
	raw := "Here you go:\n{\"healthScore\":82,\"analysis\":\"solid\"}\nThanks"
	got, err := Extract(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got["healthScore"].(float64) != 82 {
		t.Errorf("expected healthScore 82, got %v", got["healthScore"])
	}
	if got["analysis"].(string) != "solid" {
		t.Errorf("expected analysis unchanged, got %v", got["analysis"])
	}
}

func TestExtractMarkdownFence(t *testing.T) {
	raw := "```json\n{\"plans\":[]}\n```"
	got, err := Extract(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := got["plans"]; !ok {
		t.Errorf("expected plans key, got %v", got)
	}
}

func TestExtractNoObject(t *testing.T) {
	_, err := Extract("I cannot help with that.")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestExtractTruncatedObject(t *testing.T) {
	_, err := Extract(`{"healthScore":82,`)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestExtractIntoTyped(t *testing.T) {
	var out struct {
		HealthScore int `json:"healthScore"`
	}
	if err := ExtractInto("score below\n{\"healthScore\":64}", &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.HealthScore != 64 {
		t.Errorf("expected 64, got %d", out.HealthScore)
	}
}
