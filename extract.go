package gosugg

import (
	"regexp"
	"sort"
	"strings"
)

// Marker tokens substituted for placeholder runs when building group keys and
// template lines. They never collide with natural-language content or with
// each other.
const (
	MathMarker    = "__MATH__"
	GraphieMarker = "__GRAPHIE__"
	ImageMarker   = "__IMAGE__"
	WidgetMarker  = "__WIDGET__"
)

const assetHost = `ka-perseus-(?:images|graphie)\.s3\.amazonaws\.com`

var (
	// A math span is delimited by single, non-escaped dollar signs; an
	// escaped \$ inside the span does not terminate it.
	mathRE = regexp.MustCompile(`\$(?:\\\$|[^$])+\$`)

	// Graphie references appear either as a bare web+graphie URL or wrapped
	// in a markdown image link with empty alt text.
	graphieRE = regexp.MustCompile(
		`!\[\]\(web\+graphie://` + assetHost + `/[a-f0-9]{40}\)` +
			`|web\+graphie://` + assetHost + `/[a-f0-9]{40}`)

	// Image references point at the same asset host over https and carry an
	// image extension.
	imageRE = regexp.MustCompile(
		`!\[\]\(https?://` + assetHost + `/[a-f0-9]{40}\.(?:png|svg|jpe?g|gif)\)` +
			`|https?://` + assetHost + `/[a-f0-9]{40}\.(?:png|svg|jpe?g|gif)`)

	// Widget placeholders use the two-character [[ sentinel followed by the
	// snowman glyph.
	widgetRE = regexp.MustCompile(`\[\[\x{2603}[^\[\]]*\]\]`)

	markerRE = regexp.MustCompile(MathMarker + `|` + GraphieMarker + `|` + ImageMarker + `|` + WidgetMarker)

	textFragmentRE = regexp.MustCompile(`\\text(?:bf)?\{([^{}]*)\}`)
)

// Segment splits s into an ordered list of tagged runs. Math boundaries take
// priority over graphie, image and widget boundaries; everything left over is
// plain text. Unterminated boundaries simply fail to match and fall into the
// surrounding text run.
func Segment(s string) []Run {
	type span struct {
		start, end int
		kind       RunKind
	}
	var spans []span
	overlaps := func(a, b int) bool {
		for _, sp := range spans {
			if a < sp.end && sp.start < b {
				return true
			}
		}
		return false
	}

	classes := []struct {
		re   *regexp.Regexp
		kind RunKind
	}{
		{mathRE, RunMath},
		{graphieRE, RunGraphie},
		{imageRE, RunImage},
		{widgetRE, RunWidget},
	}
	for _, c := range classes {
		for _, loc := range c.re.FindAllStringIndex(s, -1) {
			if !overlaps(loc[0], loc[1]) {
				spans = append(spans, span{loc[0], loc[1], c.kind})
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var runs []Run
	pos := 0
	for _, sp := range spans {
		if sp.start > pos {
			runs = append(runs, Run{RunText, s[pos:sp.start]})
		}
		runs = append(runs, Run{sp.kind, s[sp.start:sp.end]})
		pos = sp.end
	}
	if pos < len(s) {
		runs = append(runs, Run{RunText, s[pos:]})
	}
	return runs
}

// runsOf returns the text of every run of the given kind, in order.
func runsOf(s string, kind RunKind) []string {
	var out []string
	for _, r := range Segment(s) {
		if r.Kind == kind {
			out = append(out, r.Text)
		}
	}
	return out
}

// MathSpans returns the ordered math spans of s.
func MathSpans(s string) []string { return runsOf(s, RunMath) }

// TextFragments returns the trimmed contents of every \text{} and \textbf{}
// block inside a math span, in order of appearance.
func TextFragments(math string) []string {
	var out []string
	for _, m := range textFragmentRE.FindAllStringSubmatch(math, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

// maskPlaceholders replaces every placeholder run of s with its class marker.
func maskPlaceholders(s string) string {
	var b strings.Builder
	for _, r := range Segment(s) {
		switch r.Kind {
		case RunMath:
			b.WriteString(MathMarker)
		case RunGraphie:
			b.WriteString(GraphieMarker)
		case RunImage:
			b.WriteString(ImageMarker)
		case RunWidget:
			b.WriteString(WidgetMarker)
		default:
			b.WriteString(r.Text)
		}
	}
	return b.String()
}
