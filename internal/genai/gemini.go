package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/"

	// GeminiModelFlash generates the daily schedule.
	GeminiModelFlash = "gemini-2.0-flash"

	structuredMimeType = "application/json"
)

// GeminiClient calls the generateContent endpoint with structured-output
// configuration so the model replies with plain JSON text.
type GeminiClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type geminiPayload struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: defaultGeminiURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured: %w", ErrUnavailable)
	}

	model := req.Model
	if model == "" {
		model = GeminiModelFlash
	}

	payload := geminiPayload{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.UserPrompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:      req.Temperature,
			MaxOutputTokens:  req.MaxTokens,
			ResponseMimeType: structuredMimeType,
		},
	}
	if req.SystemPrompt != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := c.baseURL + model + ":generateContent?key=" + c.apiKey
	var lastErr error

	for i := 0; i < maxAttempts; i++ {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)

		httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payloadBytes))
		if err != nil {
			cancel()
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(httpReq)
		if err != nil {
			cancel()
			lastErr = fmt.Errorf("request failed: %w", err)
			log.Warn().Err(lastErr).Int("attempt", i+1).Msg("Gemini call failed")
			time.Sleep(backoffDelay(i))
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			cancel()
			return "", fmt.Errorf("gemini reported quota limit: %w", ErrQuotaExceeded)
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			cancel()
			lastErr = fmt.Errorf("API returned non-200 status: %s, body: %s", resp.Status, string(body))
			log.Warn().Err(lastErr).Int("attempt", i+1).Msg("Gemini call failed")
			time.Sleep(backoffDelay(i))
			continue
		}

		var parsed geminiResponse
		err = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		cancel()
		if err != nil {
			return "", fmt.Errorf("failed to decode response: %w (%w)", err, ErrUnavailable)
		}

		if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no content found in Gemini response: %w", ErrUnavailable)
		}

		return parsed.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("failed to call Gemini API after %d attempts: %w (%w)", maxAttempts, lastErr, ErrUnavailable)
}
