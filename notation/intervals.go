package notation

import (
	"regexp"
	"strconv"
	"strings"
)

// US notation writes both the open interval and the 2-D coordinate pair as
// (a,b). The classifier resolves the ambiguity with a fixed precedence:
//
//  1. a closed or half-closed bracket form is always an interval;
//  2. a parenthesized pair of numbers with a >= b is a coordinate, since an
//     interval's lower bound is conventionally <= its upper bound;
//  3. otherwise the translated template hint is inspected for a structurally
//     analogous bracket usage;
//  4. with no hint, or a hint whose bracket choice the locale does not
//     support, the pair is left unchanged.
//
// Downstream behaviour depends on this exact order; do not fold the steps
// into a combined classifier.

// valueTok matches an interval/coordinate bound: a number in source or
// target notation, a single variable, or a fraction.
const valueTok = `(?:-?[0-9]+(?:[.][0-9]+)?(?:\{,\}[0-9]+)?|[a-zA-Z]|\\[a-z]*frac\{[^{}]+\}\{[^{}]+\})`

var (
	bracketPairRE = regexp.MustCompile(
		`([\[(])\s*(` + valueTok + `)\s*,\s*(` + valueTok + `)\s*([\])])`)

	// Hint probes: an inverted-bracket open interval and square-bracket
	// coordinates as they would appear in translated text.
	hintInvertedIntervalRE = regexp.MustCompile(
		`\]\s*` + valueTok + `\s*[,;]\s*` + valueTok + `\s*\[`)
	hintSquareCoordsRE = regexp.MustCompile(
		`\[\s*` + valueTok + `\s*[,;]\s*` + valueTok + `\s*\]`)

	plainNumberRE = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?$`)
)

// translateBrackets rewrites interval and coordinate notation. It runs
// before the numeric passes, so bounds are still in source-locale format.
func (t *Translator) translateBrackets(math, hint, locale string) string {
	semicolon := t.rules.IntervalSepAsSemicolon.Has(locale)
	inverted := t.rules.OpenIntervalInverted.Has(locale)
	squareCoords := t.rules.CoordsAsSquareBrackets.Has(locale)
	if !semicolon && !inverted && !squareCoords {
		return math
	}

	return bracketPairRE.ReplaceAllStringFunc(math, func(m string) string {
		g := bracketPairRE.FindStringSubmatch(m)
		left, a, b, right := g[1], g[2], g[3], g[4]

		interval := false
		coordinate := false
		switch {
		case left == "[" || right == "]":
			interval = true
		case bothDecreasingNumbers(a, b):
			coordinate = true
		case inverted && hint != "" && hintInvertedIntervalRE.MatchString(hint):
			interval = true
		case squareCoords && hint != "" && hintSquareCoordsRE.MatchString(hint):
			coordinate = true
		default:
			return m
		}

		sep := ","
		changed := false
		if semicolon {
			sep = ";"
			changed = true
		}
		switch {
		case interval && inverted:
			if left == "(" {
				left = "]"
				changed = true
			}
			if right == ")" {
				right = "["
				changed = true
			}
		case coordinate && squareCoords:
			left, right = "[", "]"
			changed = true
		}
		if !changed {
			return m
		}
		return left + a + sep + b + right
	})
}

// bothDecreasingNumbers reports whether a and b are plain numbers with
// a >= b. A decreasing pair cannot be a valid interval.
func bothDecreasingNumbers(a, b string) bool {
	if !plainNumberRE.MatchString(a) || !plainNumberRE.MatchString(b) {
		return false
	}
	av, err1 := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bv, err2 := strconv.ParseFloat(strings.TrimSpace(b), 64)
	return err1 == nil && err2 == nil && av >= bv
}
