package notation

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTranslatedMath canonicalizes translator-authored math for
// comparison against the form TranslateMath would have produced. It accepts
// permitted but non-canonical variants: alternative thin-space spellings and
// plain or no-break spaces around thousands separators, spacing inside
// interval and coordinate brackets, and shorthand trig spellings.
//
// The result is for comparison only and must never be emitted as output.
func (t *Translator) NormalizeTranslatedMath(math, locale string) string {
	locale = t.rules.Canonical(normalizeLocale(locale))
	math = norm.NFC.String(math)

	if t.rules.ThousandSepAsThinSpace.Has(locale) {
		math = canonicalizeThinSpaces(math)
	}

	math = t.canonicalizeTrig(math, locale)
	math = canonicalizeBracketSpacing(math)
	return math
}

// thinSpaceVariantRE matches a digit group boundary written with any of the
// separator spellings translators use instead of the canonical \, thin
// space.
var thinSpaceVariantRE = regexp.MustCompile(
	`([0-9])(?:\\[,;!]|~|\x{00A0}|\x{202F}| )([0-9]{3})\b`)

func canonicalizeThinSpaces(math string) string {
	// Adjacent groups share a boundary digit, so a single pass can miss
	// every other separator in 1 000 000; iterate until stable.
	for {
		out := thinSpaceVariantRE.ReplaceAllString(math, `$1\,$2`)
		if out == math {
			return out
		}
		math = out
	}
}

var trigShorthand = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\\(arc)?sen\b`), `\operatorname{${1}sen}`},
	{regexp.MustCompile(`\\(arc)?tg\b`), `\operatorname{${1}tg}`},
	{regexp.MustCompile(`\\(arc)?cotg\b`), `\operatorname{${1}cotg}`},
	{regexp.MustCompile(`\\(arc)?cosec\b`), `\operatorname{${1}cosec}`},
}

// canonicalizeTrig folds shorthand trig commands (\sen, \tg, ...) into the
// \operatorname form TranslateMath produces, and applies the locale's trig
// spelling to any remaining source-form commands.
func (t *Translator) canonicalizeTrig(math, locale string) string {
	for _, s := range trigShorthand {
		math = s.re.ReplaceAllString(math, s.repl)
	}
	return t.translateOperators(math, locale)
}

// bracketSpacingRE mirrors the interval/coordinate pair pattern, with an
// inverted open bracket allowed on either side.
var bracketSpacingRE = regexp.MustCompile(
	`([\[\](])\s*(` + valueTok + `)\s*([,;])\s*(` + valueTok + `)\s*([\])\[])`)

func canonicalizeBracketSpacing(math string) string {
	return bracketSpacingRE.ReplaceAllString(math, `$1$2$3$4$5`)
}
