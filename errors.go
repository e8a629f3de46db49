package gosugg

import "fmt"

// TemplateError indicates that an exemplar pair's placeholders did not align
// between the English and translated text. Creation of a template is atomic:
// any class mismatch fails the whole template, and the owning group is never
// retried.
type TemplateError struct {
	Class RunKind // which placeholder class failed to align
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("translated %s spans do not match the english source", e.Class)
}

// IsMismatch reports whether err is a TemplateError for the given class.
func IsMismatch(err error, class RunKind) bool {
	te, ok := err.(*TemplateError)
	return ok && te.Class == class
}

// ProviderError indicates a fallback provider failure (API error, rate
// limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a suggestion cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates the fallback provider returned a different
// number of translations than requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translation count mismatch: expected %d, got %d", e.Expected, e.Got)
}
