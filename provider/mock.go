package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock fallback provider for testing.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	CallCount    int               // Number of times Translate was called
	LastRequest  *FallbackRequest  // Last request received
	Err          error             // Error to return, if any
}

// NewMockProvider creates a new mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{},
	}
}

// Translate returns mock translations, bracketing unknown inputs.
func (m *MockProvider) Translate(ctx context.Context, req FallbackRequest) ([]string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return nil, m.Err
	}

	results := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		if translation, ok := m.Translations[text]; ok {
			results[i] = translation
		} else {
			results[i] = fmt.Sprintf("[%s]", text)
		}
	}
	return results, nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements FallbackProvider
var _ FallbackProvider = (*MockProvider)(nil)
