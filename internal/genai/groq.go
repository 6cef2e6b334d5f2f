package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

	// GroqModelFast is the default completion model for the score, plan and
	// activity stages.
	GroqModelFast = "llama-3.1-8b-instant"

	// GroqModelDeep is used by the unified plan stage, which asks for a much
	// larger structured response.
	GroqModelDeep = "llama-3.3-70b-versatile"
)

// GroqClient calls the OpenAI-compatible chat-completions endpoint.
type GroqClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type groqPayload struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func NewGroqClient(apiKey string) *GroqClient {
	return &GroqClient{
		apiKey:  apiKey,
		baseURL: defaultGroqURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Generate performs one chat-completion call. Transient transport failures
// are retried with exponential backoff; quota responses are returned
// immediately so the caller can surface a distinct status.
func (c *GroqClient) Generate(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq API key not configured: %w", ErrUnavailable)
	}

	model := req.Model
	if model == "" {
		model = GroqModelFast
	}

	payload := groqPayload{
		Model: model,
		Messages: []groqMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	var lastErr error

	for i := 0; i < maxAttempts; i++ {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)

		httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL, bytes.NewReader(payloadBytes))
		if err != nil {
			cancel()
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.http.Do(httpReq)
		if err != nil {
			cancel()
			lastErr = fmt.Errorf("request failed: %w", err)
			log.Warn().Err(lastErr).Int("attempt", i+1).Msg("Groq call failed")
			time.Sleep(backoffDelay(i))
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		if err != nil {
			return "", fmt.Errorf("failed to read response: %w", ErrUnavailable)
		}

		if resp.StatusCode == http.StatusTooManyRequests || quotaError(body) {
			return "", fmt.Errorf("groq reported quota limit: %w", ErrQuotaExceeded)
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API returned non-200 status: %s, body: %s", resp.Status, string(body))
			log.Warn().Err(lastErr).Int("attempt", i+1).Msg("Groq call failed")
			time.Sleep(backoffDelay(i))
			continue
		}

		var parsed groqResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", fmt.Errorf("failed to decode response: %w (%w)", err, ErrUnavailable)
		}
		if parsed.Error != nil {
			return "", fmt.Errorf("groq error %q: %w", parsed.Error.Message, ErrUnavailable)
		}
		if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
			return "", fmt.Errorf("no content found in Groq response: %w", ErrUnavailable)
		}

		return parsed.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("failed to call Groq API after %d attempts: %w (%w)", maxAttempts, lastErr, ErrUnavailable)
}

// quotaError spots the provider's quota code in an error body even when the
// HTTP status is not 429.
func quotaError(body []byte) bool {
	return strings.Contains(string(body), "insufficient_quota")
}
