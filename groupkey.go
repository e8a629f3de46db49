package gosugg

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// paragraphSep separates paragraphs in exercise strings.
const paragraphSep = "\n\n"

// A math span directly followed by a widget placeholder is a common pattern
// whose surrounding whitespace translators frequently change; collapse it so
// the difference never splits a group.
var mathWidgetGapRE = regexp.MustCompile(MathMarker + `[ \t]*` + WidgetMarker)

// GroupKey is the canonical fingerprint used to bucket structurally similar
// strings. Skeleton is the natural-language skeleton with placeholder runs
// masked; TextSets holds, per math span, the sorted natural-language
// fragments found inside \text{}/\textbf{} blocks.
type GroupKey struct {
	Skeleton string     `json:"str"`
	TextSets [][]string `json:"texts"`
}

// String serializes the key into a structurally comparable value. Field
// order is fixed by the struct, so equivalent keys always serialize
// identically.
func (k GroupKey) String() string {
	b, _ := json.Marshal(k)
	return string(b)
}

// BuildGroupKey computes the group key of s. It is deterministic and total.
//
// Two strings differing only in math, graphie, image or widget content, in
// bold markup, or in minor trailing punctuation per line receive the same
// key. Within each math span the \text fragments are sorted so that spans
// differing only in fragment order still match.
func BuildGroupKey(s string) GroupKey {
	maths := MathSpans(s)
	sets := make([][]string, len(maths))
	for i, m := range maths {
		frags := TextFragments(m)
		if frags == nil {
			frags = []string{}
		}
		sort.Strings(frags)
		sets[i] = frags
	}

	sk := maskPlaceholders(s)
	sk = strings.ReplaceAll(sk, "**", "")
	sk = mathWidgetGapRE.ReplaceAllString(sk, MathMarker+" "+WidgetMarker)

	lines := strings.Split(sk, "\n")
	for i, line := range lines {
		lines[i] = trimLineEnd(line)
	}
	sk = strings.Join(lines, "\n")

	paras := strings.Split(sk, paragraphSep)
	for i, p := range paras {
		paras[i] = strings.TrimSpace(p)
	}
	sk = strings.Join(paras, paragraphSep)

	return GroupKey{Skeleton: sk, TextSets: sets}
}

// trimLineEnd drops trailing whitespace and minor trailing punctuation from
// one physical line.
func trimLineEnd(line string) string {
	line = strings.TrimRight(line, " \t")
	line = strings.TrimRight(line, ".,:;!?")
	return strings.TrimRight(line, " \t")
}
