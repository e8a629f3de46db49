package gosugg

import "context"

// FallbackProvider is the interface for backends that can propose
// translations for items the template engine has no safe suggestion for.
// Implementations live in the provider subpackage; the core engine only
// consults a provider through SuggestWithFallback.
type FallbackProvider interface {
	Translate(ctx context.Context, req FallbackRequest) ([]string, error)
}

// FallbackRequest is a batch of source strings to translate.
type FallbackRequest struct {
	Texts  []string // English source strings, one result expected per entry
	Locale string   // normalized target locale
}
