package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/lingoreef/gosugg"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements FallbackProvider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a batch of exercise strings using OpenAI.
func (p *OpenAIProvider) Translate(ctx context.Context, req FallbackRequest) ([]string, error) {
	if len(req.Texts) == 0 {
		return []string{}, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &gosugg.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &gosugg.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, len(req.Texts))
}

func (p *OpenAIProvider) buildSystemPrompt(req FallbackRequest) string {
	target := gosugg.LanguageName(req.Locale)

	return fmt.Sprintf(`# Role
You are an expert translator of math exercise content. You translate to %s.

# Rules
- Translate only the natural-language text.
- Copy every $...$ math expression unchanged, byte for byte.
- Copy every web+graphie:// or https:// asset reference unchanged.
- Copy every [[☃ ...]] widget placeholder unchanged.
- Preserve paragraph breaks (blank lines) exactly.

# Output
Return a JSON object: {"translations": ["...", ...]} with exactly one entry
per input string, in input order.`, target)
}

func (p *OpenAIProvider) buildUserMessage(req FallbackRequest) string {
	payload := struct {
		Texts []string `json:"texts"`
	}{Texts: req.Texts}

	b, _ := json.Marshal(payload)
	return string(b)
}

func (p *OpenAIProvider) parseResponse(content string, expected int) ([]string, error) {
	var parsed struct {
		Translations []string `json:"translations"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &gosugg.ProviderError{
			Message:   "failed to parse OpenAI response",
			Cause:     err,
			Retryable: true,
		}
	}
	if len(parsed.Translations) != expected {
		return nil, &gosugg.ProviderError{
			Message:   (&gosugg.CountMismatchError{Expected: expected, Got: len(parsed.Translations)}).Error(),
			Retryable: true,
		}
	}
	return parsed.Translations, nil
}

// isRetryableError classifies transport and API errors.
func isRetryableError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		// Rate limits and server errors are retryable; auth and bad
		// requests are not.
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}

	msg := err.Error()
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "connection refused")
}

// Verify OpenAIProvider implements FallbackProvider
var _ FallbackProvider = (*OpenAIProvider)(nil)
