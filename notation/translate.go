package notation

import (
	"regexp"
	"strings"
)

// Translator rewrites math expressions for a target locale. It is stateless
// apart from the immutable rule table and safe for concurrent use.
type Translator struct {
	rules *Table
}

// NewTranslator creates a translator over the given rule table. A nil table
// selects DefaultTable.
func NewTranslator(rules *Table) *Translator {
	if rules == nil {
		rules = DefaultTable()
	}
	return &Translator{rules: rules}
}

// Rules returns the translator's rule table.
func (t *Translator) Rules() *Table { return t.rules }

// TranslateMath rewrites a math span to the target locale's conventions.
// hint is the translated exemplar math used to disambiguate notations that
// are lexically identical in the source locale; pass "" when no exemplar is
// available.
//
// The pass order is fixed: bracket and hint-dependent rewrites run first
// because the numeric passes assume source-locale number formatting, and the
// numeral-script rewrite runs last. TranslateMath never fails; a locale
// absent from a rule set leaves that rule a no-op.
func (t *Translator) TranslateMath(math, hint, locale string) string {
	locale = t.rules.Canonical(normalizeLocale(locale))
	math = t.MaybeTranslateMath(math, hint, locale)
	math = t.translateOperators(math, locale)
	math = t.translateNumbers(math, locale)
	math = t.translateNumerals(math, locale)
	return math
}

// MaybeTranslateMath applies the geometry-dependent rewrites: interval and
// coordinate bracket notation, and the hint-gated operator swaps for locales
// where both operator notations are in use.
func (t *Translator) MaybeTranslateMath(math, hint, locale string) string {
	locale = t.rules.Canonical(normalizeLocale(locale))
	math = t.translateBrackets(math, hint, locale)

	if hint == "" {
		return math
	}
	// The exemplar's notation wins, but only when it is unambiguous: the
	// hint must contain the alternate form and must not mix it with the
	// source form.
	if t.rules.MaybeTimesAsCdot.Has(locale) &&
		strings.Contains(hint, `\cdot`) && !strings.Contains(hint, `\times`) {
		math = strings.ReplaceAll(math, `\times`, `\cdot`)
	}
	if t.rules.MaybeCdotAsTimes.Has(locale) &&
		strings.Contains(hint, `\times`) && !strings.Contains(hint, `\cdot`) {
		math = strings.ReplaceAll(math, `\cdot`, `\times`)
	}
	if t.rules.MaybeDivAsColon.Has(locale) &&
		strings.Contains(hint, `\mathbin{:}`) && !strings.Contains(hint, `\div`) {
		math = strings.ReplaceAll(math, `\div`, `\mathbin{:}`)
	}
	return math
}

var (
	sinRE = regexp.MustCompile(`\\(arc)?sin\b`)
	tanRE = regexp.MustCompile(`\\(arc)?tan\b`)
	cotRE = regexp.MustCompile(`\\(arc)?cot\b`)
	cscRE = regexp.MustCompile(`\\(arc)?csc\b`)
)

// translateOperators applies the unconditional, locale-gated operator and
// trig spelling substitutions.
func (t *Translator) translateOperators(math, locale string) string {
	if t.rules.TimesAsCdot.Has(locale) {
		math = strings.ReplaceAll(math, `\times`, `\cdot`)
	}
	if t.rules.CdotAsTimes.Has(locale) {
		math = strings.ReplaceAll(math, `\cdot`, `\times`)
	}
	if t.rules.DivAsColon.Has(locale) {
		math = strings.ReplaceAll(math, `\div`, `\mathbin{:}`)
	}

	if t.rules.SinAsSen.Has(locale) {
		math = sinRE.ReplaceAllString(math, `\operatorname{${1}sen}`)
	}
	if t.rules.TanAsTg.Has(locale) {
		math = tanRE.ReplaceAllString(math, `\operatorname{${1}tg}`)
	}
	if t.rules.CotAsCotg.Has(locale) {
		math = cotRE.ReplaceAllString(math, `\operatorname{${1}cotg}`)
	}
	if t.rules.CscAsCosec.Has(locale) {
		math = cscRE.ReplaceAllString(math, `\operatorname{${1}cosec}`)
	}
	return math
}

// numberPattern builds the decimal-number regex shared by the forward
// rewrite and the comparison canonicalizer, parameterized by decimal
// separator and digit class. Capture groups: integer part, decimal digits,
// repeating digits.
func numberPattern(decSep, digit string) *regexp.Regexp {
	return regexp.MustCompile(
		`(` + digit + `{1,3}(?:\{,\}` + digit + `{3})+|` + digit + `+)` +
			`(?:` + decSep + `(` + digit + `*))?` +
			`(?:\\overline\{(` + digit + `+)\})?`)
}

// Input numbers are always in source-locale (US) notation: dot decimal mark,
// {,} thousands separator.
var usNumberRE = numberPattern(`\.`, `[0-9]`)

// translateNumbers rewrites decimal separators, thousands separators and
// repeating-decimal notation. Values wrapped in color-highlight macros are
// handled transparently since matching is position-independent.
func (t *Translator) translateNumbers(math, locale string) string {
	thousandSep := "{,}"
	switch {
	case t.rules.ThousandSepAsThinSpace.Has(locale):
		thousandSep = `\,`
	case t.rules.ThousandSepAsDot.Has(locale):
		thousandSep = "."
	case t.rules.NoThousandSep.Has(locale):
		thousandSep = ""
	}
	decSep := "."
	if t.rules.DecimalComma.Has(locale) {
		decSep = "{,}"
	}

	return usNumberRE.ReplaceAllStringFunc(math, func(m string) string {
		idx := usNumberRE.FindStringSubmatchIndex(m)
		intPart := m[idx[2]:idx[3]]
		hasDec := idx[4] >= 0
		decPart := ""
		if hasDec {
			decPart = m[idx[4]:idx[5]]
		}
		repPart := ""
		if idx[6] >= 0 {
			repPart = m[idx[6]:idx[7]]
		}

		out := strings.ReplaceAll(intPart, "{,}", thousandSep)
		if hasDec {
			out += decSep + decPart
		}
		if repPart != "" {
			switch {
			case !hasDec:
				// A repeating block without a decimal mark is not a
				// decimal number; leave it alone.
				out += `\overline{` + repPart + `}`
			case t.rules.RepeatingAsParens.Has(locale):
				out += "(" + repPart + ")"
			case t.rules.RepeatingAsDots.Has(locale):
				out += dotDigits(repPart)
			default:
				out += `\overline{` + repPart + `}`
			}
		}
		return out
	})
}

// dotDigits renders a repeating block in dotted notation: every digit of a
// single-digit block is dotted, longer blocks dot only the first and last
// digit.
func dotDigits(digits string) string {
	if len(digits) == 1 {
		return `\dot{` + digits + `}`
	}
	first := digits[:1]
	last := digits[len(digits)-1:]
	middle := digits[1 : len(digits)-1]
	return `\dot{` + first + `}` + middle + `\dot{` + last + `}`
}

// persoArabicDigits maps Western digits to Extended Arabic-Indic digits.
var persoArabicDigits = map[rune]rune{
	'0': '۰', '1': '۱', '2': '۲', '3': '۳', '4': '۴',
	'5': '۵', '6': '۶', '7': '۷', '8': '۸', '9': '۹',
}

// translateNumerals substitutes the target numeral script. Runs after all
// number formatting since formatting assumes Western digits.
func (t *Translator) translateNumerals(math, locale string) string {
	if !t.rules.PersoArabicNumerals.Has(locale) {
		return math
	}
	return strings.Map(func(r rune) rune {
		if d, ok := persoArabicDigits[r]; ok {
			return d
		}
		return r
	}, math)
}

// normalizeLocale lowercases a locale identifier and converts underscore
// region separators to dashes ("pt_PT" -> "pt-pt").
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}
