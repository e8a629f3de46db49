package gosugg

import (
	"context"
	"strings"

	"github.com/lingoreef/gosugg/notation"
)

// Engine answers batched suggestion requests over a corpus of opaque items.
// Items are grouped by structural similarity at construction; the group map
// is read-only afterwards, so one engine may serve concurrent Suggest calls.
type Engine[T any] struct {
	locale        string
	getEnglish    func(T) string
	getTranslated func(T) string

	nt       *notation.Translator
	cache    SuggestionCache
	fallback FallbackProvider

	groups map[string]*SuggestionGroup[T]
}

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithRules sets the notation rule table. The default is notation.DefaultTable.
func WithRules[T any](rules *notation.Table) Option[T] {
	return func(e *Engine[T]) {
		e.nt = notation.NewTranslator(rules)
	}
}

// WithCache sets the suggestion cache.
func WithCache[T any](cache SuggestionCache) Option[T] {
	return func(e *Engine[T]) {
		e.cache = cache
	}
}

// WithFallback sets an optional provider consulted by SuggestWithFallback
// for items the template engine cannot suggest for. The core Suggest path
// never uses it.
func WithFallback[T any](p FallbackProvider) Option[T] {
	return func(e *Engine[T]) {
		e.fallback = p
	}
}

// NewEngine partitions the corpus into suggestion groups and derives a
// template for every group that already has a translated exemplar. The
// accessors must be pure; getTranslated returns "" for untranslated items.
func NewEngine[T any](items []T, getEnglish, getTranslated func(T) string, locale string, opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		locale:        NormalizeLocale(locale),
		getEnglish:    getEnglish,
		getTranslated: getTranslated,
		nt:            notation.NewTranslator(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.groups = e.buildGroups(items)
	return e
}

// buildGroups buckets items by group key and creates one template per group
// from its first translated exemplar. A misaligned exemplar marks the group
// with an error instead of aborting the other groups.
func (e *Engine[T]) buildGroups(items []T) map[string]*SuggestionGroup[T] {
	groups := e.groupItems(items)
	for _, g := range groups {
		e.buildTemplate(g)
	}
	return groups
}

// groupItems buckets items by serialized group key without deriving
// templates.
func (e *Engine[T]) groupItems(items []T) map[string]*SuggestionGroup[T] {
	groups := make(map[string]*SuggestionGroup[T])
	for _, item := range items {
		key := BuildGroupKey(e.getEnglish(item)).String()
		g, ok := groups[key]
		if !ok {
			g = &SuggestionGroup[T]{}
			groups[key] = g
		}
		g.Items = append(g.Items, item)
	}
	return groups
}

// buildTemplate derives the group's template from its first translated
// exemplar, if any.
func (e *Engine[T]) buildTemplate(g *SuggestionGroup[T]) {
	for _, item := range g.Items {
		translated := e.getTranslated(item)
		if translated == "" {
			continue
		}
		tmpl, err := CreateTemplate(e.getEnglish(item), translated, e.locale, e.nt)
		if err != nil {
			g.Err = err
		} else {
			g.Template = tmpl
		}
		return
	}
}

// Groups exposes the precomputed group map, keyed by serialized group key.
// The returned map must be treated as read-only.
func (e *Engine[T]) Groups() map[string]*SuggestionGroup[T] { return e.groups }

// Locale returns the engine's normalized target locale.
func (e *Engine[T]) Locale() string { return e.locale }

// Suggest answers a batch of suggestion requests. Each answer is either a
// complete suggested translation or an explicit absence; no answer is ever
// partially substituted.
func (e *Engine[T]) Suggest(items []T) []Suggestion[T] {
	out := make([]Suggestion[T], len(items))
	for i, item := range items {
		text, ok := e.suggestOne(e.getEnglish(item))
		out[i] = Suggestion[T]{Item: item, Text: text, Ok: ok}
	}
	return out
}

func (e *Engine[T]) suggestOne(english string) (string, bool) {
	cacheKey := SuggestionKey(HashText(english), e.locale)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			return cached, true
		}
	}

	text, ok := e.computeSuggestion(english)
	if ok && e.cache != nil {
		_ = e.cache.Set(cacheKey, text) // ignore cache set errors
	}
	return text, ok
}

func (e *Engine[T]) computeSuggestion(english string) (string, bool) {
	key := BuildGroupKey(english)
	skeleton := strings.TrimSpace(key.Skeleton)

	switch skeleton {
	case GraphieMarker, ImageMarker, WidgetMarker:
		// Asset references and widget placeholders are never translated.
		return english, true
	case MathMarker:
		if len(key.TextSets) == 1 && len(key.TextSets[0]) == 0 {
			return e.translateAllMath(english), true
		}
	}

	group, ok := e.groups[key.String()]
	if !ok || group.Err != nil || group.Template == nil {
		return "", false
	}
	return group.Template.Populate(english)
}

// translateAllMath rewrites every math span of a pure-math string with an
// empty hint, leaving surrounding whitespace intact.
func (e *Engine[T]) translateAllMath(s string) string {
	var b strings.Builder
	for _, r := range Segment(s) {
		if r.Kind == RunMath {
			b.WriteString(e.nt.TranslateMath(r.Text, "", e.locale))
		} else {
			b.WriteString(r.Text)
		}
	}
	return b.String()
}

// SuggestWithFallback runs Suggest and then sends the unanswered items to
// the configured fallback provider in one batch. Without a provider it is
// identical to Suggest.
func (e *Engine[T]) SuggestWithFallback(ctx context.Context, items []T) ([]Suggestion[T], error) {
	suggestions := e.Suggest(items)
	if e.fallback == nil {
		return suggestions, nil
	}

	var missed []int
	var texts []string
	for i, s := range suggestions {
		if !s.Ok {
			missed = append(missed, i)
			texts = append(texts, e.getEnglish(s.Item))
		}
	}
	if len(missed) == 0 {
		return suggestions, nil
	}

	results, err := e.fallback.Translate(ctx, FallbackRequest{
		Texts:  texts,
		Locale: e.locale,
	})
	if err != nil {
		return suggestions, err
	}
	if len(results) != len(missed) {
		return suggestions, &CountMismatchError{Expected: len(missed), Got: len(results)}
	}
	for j, i := range missed {
		if results[j] == "" {
			continue
		}
		suggestions[i].Text = results[j]
		suggestions[i].Ok = true
	}
	return suggestions, nil
}
