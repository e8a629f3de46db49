// Package provider defines fallback translation backends for items the
// template engine has no safe suggestion for.
package provider

import "github.com/lingoreef/gosugg"

// FallbackProvider is an alias to the main package interface for
// convenience.
type FallbackProvider = gosugg.FallbackProvider

// FallbackRequest is an alias to the main package type.
type FallbackRequest = gosugg.FallbackRequest
