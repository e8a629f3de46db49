package gosugg

// RunKind identifies the class of a placeholder run.
type RunKind int

const (
	// RunText is plain natural-language text.
	RunText RunKind = iota
	// RunMath is a $...$-delimited math expression.
	RunMath
	// RunGraphie is a web+graphie diagram reference.
	RunGraphie
	// RunImage is a hosted image reference.
	RunImage
	// RunWidget is an interactive widget placeholder.
	RunWidget
)

// String returns the lowercase class name used in error messages.
func (k RunKind) String() string {
	switch k {
	case RunText:
		return "text"
	case RunMath:
		return "math"
	case RunGraphie:
		return "graphie"
	case RunImage:
		return "image"
	case RunWidget:
		return "widget"
	default:
		return "unknown"
	}
}

// Run is one segment of a source string. Concatenating the Text of all runs
// produced for a string reconstructs that string exactly.
type Run struct {
	Kind RunKind
	Text string
}

// Suggestion is the engine's answer for a single item. Ok reports whether a
// safe suggestion exists; when it is false Text is empty.
type Suggestion[T any] struct {
	Item T
	Text string
	Ok   bool
}

// SuggestionGroup collects the corpus items sharing one group key together
// with the template derived from the group's exemplar pair. Template is nil
// when no item in the group carries a translation yet; Err is non-nil when
// the exemplar's placeholders did not align, which marks the whole group
// permanently unusable.
type SuggestionGroup[T any] struct {
	Items    []T
	Template *Template
	Err      error
}

// SuggestionCache is the interface for caching computed suggestions.
type SuggestionCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
