package gosugg

import (
	"sort"
	"strings"

	"github.com/lingoreef/gosugg/notation"
)

// Template is the reusable structure derived from one (English, translated)
// exemplar pair. It is immutable once created and replayed against any other
// English string carrying the same group key.
type Template struct {
	locale string
	nt     *notation.Translator

	// Translated paragraph lines with placeholder runs replaced by markers.
	lines []string

	// Index mappings from translated occurrence order to source occurrence
	// order, one per placeholder class.
	mathToSource    []int
	graphieToSource []int
	imageToSource   []int
	widgetToSource  []int

	// The English string mapped against itself. Replaying the template onto
	// a string whose self-mapping differs would scramble math between
	// occurrences, so this acts as a validity fingerprint.
	mathSelf []int

	// English \text fragment -> translated counterpart.
	texts map[string]string

	// Translated math joined together, used as the disambiguation hint for
	// the notation translator.
	hint string
}

// CreateTemplate builds a template from an exemplar pair. Creation is
// atomic: if any placeholder class of the translated string cannot be
// aligned with the English source, it fails with a TemplateError naming the
// class and no template is produced.
func CreateTemplate(english, translated, locale string, nt *notation.Translator) (*Template, error) {
	if nt == nil {
		nt = notation.NewTranslator(nil)
	}
	english = strings.TrimRight(english, " \t\r\n")
	translated = strings.TrimRight(translated, " \t\r\n")

	englishMaths := MathSpans(english)
	translatedMaths := MathSpans(translated)
	hint := strings.Join(translatedMaths, " ")
	texts := pairTextFragments(english, translated)

	t := &Template{
		locale: locale,
		nt:     nt,
		lines:  strings.Split(maskPlaceholders(translated), paragraphSep),
		texts:  texts,
		hint:   hint,
	}

	rewritten := make([]string, len(englishMaths))
	for i, m := range englishMaths {
		rw, ok := replaceTextFragments(m, texts)
		if !ok {
			return nil, &TemplateError{Class: RunMath}
		}
		rewritten[i] = nt.TranslateMath(rw, hint, locale)
	}

	normalize := func(s string) string { return nt.NormalizeTranslatedMath(s, locale) }
	var ok bool
	if t.mathToSource, ok = buildMapping(translatedMaths, rewritten, normalize); !ok {
		return nil, &TemplateError{Class: RunMath}
	}
	t.mathSelf, _ = buildMapping(englishMaths, englishMaths, nil)

	if t.graphieToSource, ok = buildMapping(runsOf(translated, RunGraphie), runsOf(english, RunGraphie), nil); !ok {
		return nil, &TemplateError{Class: RunGraphie}
	}
	if t.imageToSource, ok = buildMapping(runsOf(translated, RunImage), runsOf(english, RunImage), nil); !ok {
		return nil, &TemplateError{Class: RunImage}
	}
	if t.widgetToSource, ok = buildMapping(runsOf(translated, RunWidget), runsOf(english, RunWidget), nil); !ok {
		return nil, &TemplateError{Class: RunWidget}
	}

	return t, nil
}

// Populate replays the template against another English string with the same
// group key. It degrades to ok=false, never a partial string, when the line
// count differs, when replaying would alter relative math positions, or when
// a \text fragment is missing from the template's dictionary.
func (t *Template) Populate(english string) (string, bool) {
	english = strings.TrimRight(english, " \t\r\n")

	// Count paragraphs on the masked string so a paragraph separator inside
	// a placeholder span cannot skew the line count.
	if strings.Count(maskPlaceholders(english), paragraphSep) != len(t.lines)-1 {
		return "", false
	}

	maths := MathSpans(english)
	self, _ := buildMapping(maths, maths, nil)
	if !intsEqual(self, t.mathSelf) {
		return "", false
	}

	rewritten := make([]string, len(maths))
	for i, m := range maths {
		rw, ok := replaceTextFragments(m, t.texts)
		if !ok {
			return "", false
		}
		rewritten[i] = t.nt.TranslateMath(rw, t.hint, t.locale)
	}
	graphies := runsOf(english, RunGraphie)
	images := runsOf(english, RunImage)
	widgets := runsOf(english, RunWidget)

	var mathN, graphieN, imageN, widgetN int
	bad := false
	pick := func(src []string, mapping []int, n *int) string {
		if *n >= len(mapping) || mapping[*n] >= len(src) {
			bad = true
			return ""
		}
		out := src[mapping[*n]]
		*n++
		return out
	}

	out := make([]string, len(t.lines))
	for i, line := range t.lines {
		out[i] = markerRE.ReplaceAllStringFunc(line, func(marker string) string {
			switch marker {
			case MathMarker:
				return pick(rewritten, t.mathToSource, &mathN)
			case GraphieMarker:
				return pick(graphies, t.graphieToSource, &graphieN)
			case ImageMarker:
				return pick(images, t.imageToSource, &imageN)
			default:
				return pick(widgets, t.widgetToSource, &widgetN)
			}
		})
		if bad {
			return "", false
		}
	}
	return strings.Join(out, paragraphSep), true
}

// buildMapping locates, for every translated occurrence, its counterpart in
// the rewritten English occurrences. normalize may be nil for exact
// comparison. The second return value is false when any occurrence has no
// counterpart.
func buildMapping(outputs, inputs []string, normalize func(string) string) ([]int, bool) {
	canonical := inputs
	if normalize != nil {
		canonical = make([]string, len(inputs))
		for i, in := range inputs {
			canonical[i] = normalize(in)
		}
	}
	mapping := make([]int, len(outputs))
	for i, out := range outputs {
		if normalize != nil {
			out = normalize(out)
		}
		idx := -1
		for j, in := range canonical {
			if in == out {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, false
		}
		mapping[i] = idx
	}
	return mapping, true
}

// pairTextFragments pairs the sorted \text fragment sets of the English and
// translated strings into a dictionary. Sorting makes the pairing
// order-independent, matching the group key's treatment of fragments.
func pairTextFragments(english, translated string) map[string]string {
	var eFrags, tFrags []string
	for _, m := range MathSpans(english) {
		eFrags = append(eFrags, TextFragments(m)...)
	}
	for _, m := range MathSpans(translated) {
		tFrags = append(tFrags, TextFragments(m)...)
	}
	sort.Strings(eFrags)
	sort.Strings(tFrags)

	texts := make(map[string]string)
	for i := 0; i < len(eFrags) && i < len(tFrags); i++ {
		texts[eFrags[i]] = tFrags[i]
	}
	return texts
}

// replaceTextFragments substitutes every \text{}/\textbf{} fragment with its
// dictionary counterpart. Returns false when a non-empty fragment has no
// entry.
func replaceTextFragments(math string, texts map[string]string) (string, bool) {
	missing := false
	out := textFragmentRE.ReplaceAllStringFunc(math, func(m string) string {
		g := textFragmentRE.FindStringSubmatch(m)
		frag := strings.TrimSpace(g[1])
		if frag == "" {
			return m
		}
		repl, ok := texts[frag]
		if !ok {
			missing = true
			return m
		}
		return strings.Replace(m, g[1], repl, 1)
	})
	if missing {
		return "", false
	}
	return out, true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
