package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lingoreef/gosugg"
)

func TestMockProvider(t *testing.T) {
	m := NewMockProvider()
	m.Translations["hello"] = "bonjour"

	got, err := m.Translate(context.Background(), FallbackRequest{
		Texts:  []string{"hello", "unknown"},
		Locale: "fr",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != "bonjour" {
		t.Errorf("known text: %q", got[0])
	}
	if got[1] != "[unknown]" {
		t.Errorf("unknown text: %q", got[1])
	}
	if m.CallCount != 1 || m.LastRequest.Locale != "fr" {
		t.Errorf("call bookkeeping: count=%d, last=%+v", m.CallCount, m.LastRequest)
	}

	m.Reset()
	if m.CallCount != 0 || m.LastRequest != nil {
		t.Error("reset incomplete")
	}
}

func TestMockProvider_Error(t *testing.T) {
	m := NewMockProvider()
	m.Err = errors.New("boom")
	if _, err := m.Translate(context.Background(), FallbackRequest{Texts: []string{"x"}}); err == nil {
		t.Error("expected configured error")
	}
}

func TestOpenAIProvider_SystemPrompt(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})
	prompt := p.buildSystemPrompt(FallbackRequest{Locale: "cs"})

	for _, want := range []string{"Czech", "$...$", "[[☃", "web+graphie://"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestOpenAIProvider_UserMessage(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})
	msg := p.buildUserMessage(FallbackRequest{Texts: []string{"solve $x$"}})
	if msg != `{"texts":["solve $x$"]}` {
		t.Errorf("unexpected payload: %s", msg)
	}
}

func TestOpenAIProvider_ParseResponse(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	got, err := p.parseResponse(`{"translations":["a","b"]}`, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("got %v", got)
	}

	t.Run("count mismatch", func(t *testing.T) {
		_, err := p.parseResponse(`{"translations":["a"]}`, 2)
		var perr *gosugg.ProviderError
		if !errors.As(err, &perr) || !perr.Retryable {
			t.Errorf("expected retryable ProviderError, got %v", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := p.parseResponse(`not json`, 1)
		var perr *gosugg.ProviderError
		if !errors.As(err, &perr) {
			t.Errorf("expected ProviderError, got %v", err)
		}
	})
}

func TestOpenAIProvider_EmptyBatch(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})
	got, err := p.Translate(context.Background(), FallbackRequest{Locale: "fr"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
