// Package notation rewrites LaTeX-like math expressions to match target
// locale conventions: decimal marks, thousands separators, operator and trig
// spellings, repeating decimals, interval and coordinate brackets, and
// numeral scripts.
//
// All behaviour is driven by an immutable rule Table; there are no
// locale-specific code paths outside the table lookups and the bracket
// disambiguation heuristics.
package notation

// LocaleSet is an immutable set of locale identifiers sharing one notation
// feature.
type LocaleSet map[string]struct{}

// NewLocaleSet builds a set from the given locales.
func NewLocaleSet(locales ...string) LocaleSet {
	s := make(LocaleSet, len(locales))
	for _, l := range locales {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether the locale is in the set.
func (s LocaleSet) Has(locale string) bool {
	_, ok := s[locale]
	return ok
}

// Table holds the per-locale feature sets driving the rule engine. Build one
// with DefaultTable at process start and pass it into NewTranslator; the
// table is read-only thereafter.
type Table struct {
	// Thousands separator styles are mutually exclusive. Locales in none of
	// the three sets keep the source {,} separator.
	ThousandSepAsThinSpace LocaleSet
	ThousandSepAsDot       LocaleSet
	NoThousandSep          LocaleSet

	// DecimalComma locales write 3.14 as 3{,}14.
	DecimalComma LocaleSet

	// Unconditional operator rewrites.
	TimesAsCdot LocaleSet // \times -> \cdot
	CdotAsTimes LocaleSet // \cdot  -> \times
	DivAsColon  LocaleSet // \div   -> \mathbin{:}

	// Hint-gated operator rewrites: locales where both notations are in use
	// and the exemplar's choice decides. Applied only when a translated
	// template hint is present, contains the alternate form, and does not
	// contain the source form.
	MaybeTimesAsCdot LocaleSet
	MaybeCdotAsTimes LocaleSet
	MaybeDivAsColon  LocaleSet

	// Trigonometric function spellings, each with its arc- prefixed form.
	SinAsSen   LocaleSet // \sin -> \operatorname{sen}
	TanAsTg    LocaleSet // \tan -> \operatorname{tg}
	CotAsCotg  LocaleSet // \cot -> \operatorname{cotg}
	CscAsCosec LocaleSet // \csc -> \operatorname{cosec}

	// Repeating decimal notation. Locales in neither set keep \overline{}.
	RepeatingAsParens LocaleSet // 0.\overline{3} -> 0{,}(3)
	RepeatingAsDots   LocaleSet // 0.\overline{34} -> 0.\dot{3}4... first/last digit dotted

	// Numeral script. Applied last so all earlier passes see Western digits.
	PersoArabicNumerals LocaleSet

	// Interval and coordinate notation.
	IntervalSepAsSemicolon LocaleSet // [a,b] -> [a;b]
	OpenIntervalInverted   LocaleSet // (a,b) -> ]a,b[
	CoordsAsSquareBrackets LocaleSet // (a,b) -> [a,b]

	known map[string]struct{}
}

// DefaultTable returns the built-in rule table.
func DefaultTable() *Table {
	t := &Table{
		ThousandSepAsThinSpace: NewLocaleSet(
			"cs", "fr", "pl", "sv", "nb", "ru", "uk", "bg", "hu",
			"pt-pt", "hy", "az", "lv", "lt", "et", "fi", "sk"),
		ThousandSepAsDot: NewLocaleSet(
			"pt", "tr", "id", "da", "nl", "de", "it", "es", "el",
			"vi", "sr", "ro", "sq", "bs"),
		NoThousandSep: NewLocaleSet("ko", "ps"),

		DecimalComma: NewLocaleSet(
			"cs", "fr", "pl", "sv", "nb", "ru", "uk", "bg", "hu",
			"pt", "pt-pt", "tr", "id", "da", "nl", "de", "it", "es",
			"el", "vi", "sr", "ro", "sq", "bs", "hy", "az", "lv",
			"lt", "et", "fi", "sk", "ka"),

		TimesAsCdot: NewLocaleSet(
			"cs", "de", "pl", "sv", "nb", "da", "hu", "ru", "uk",
			"sr", "lv", "lt", "sk"),
		CdotAsTimes: NewLocaleSet("fr", "ps"),
		DivAsColon:  NewLocaleSet("cs", "de", "ru", "uk", "hu", "sk"),

		MaybeTimesAsCdot: NewLocaleSet(
			"pt", "pt-pt", "it", "es", "fi", "nl", "bg", "ro", "az", "hy"),
		MaybeCdotAsTimes: NewLocaleSet(
			"pt", "pt-pt", "it", "es", "fi", "nl", "bg", "ro"),
		MaybeDivAsColon: NewLocaleSet(
			"pl", "sv", "da", "nb", "pt-pt", "it", "bg", "az", "hy"),

		SinAsSen:   NewLocaleSet("it", "pt", "pt-pt", "es"),
		TanAsTg:    NewLocaleSet("cs", "pl", "ru", "uk", "hu", "pt", "pt-pt", "sr", "bg", "ro", "az", "hy", "sk"),
		CotAsCotg:  NewLocaleSet("cs", "pt", "pt-pt", "sk"),
		CscAsCosec: NewLocaleSet("pt", "pt-pt", "es"),

		RepeatingAsParens: NewLocaleSet("az", "bg", "pl", "hy"),
		RepeatingAsDots:   NewLocaleSet("bn", "hi", "zh"),

		PersoArabicNumerals: NewLocaleSet("ps", "fa"),

		IntervalSepAsSemicolon: NewLocaleSet(
			"cs", "de", "pl", "ru", "uk", "hu", "sv", "da", "nb", "pt-pt", "sk"),
		OpenIntervalInverted:   NewLocaleSet("fr", "hu", "pt-pt"),
		CoordsAsSquareBrackets: NewLocaleSet("cs", "sk"),
	}
	t.buildKnown()
	return t
}

func (t *Table) buildKnown() {
	t.known = make(map[string]struct{})
	for _, s := range []LocaleSet{
		t.ThousandSepAsThinSpace, t.ThousandSepAsDot, t.NoThousandSep,
		t.DecimalComma,
		t.TimesAsCdot, t.CdotAsTimes, t.DivAsColon,
		t.MaybeTimesAsCdot, t.MaybeCdotAsTimes, t.MaybeDivAsColon,
		t.SinAsSen, t.TanAsTg, t.CotAsCotg, t.CscAsCosec,
		t.RepeatingAsParens, t.RepeatingAsDots,
		t.PersoArabicNumerals,
		t.IntervalSepAsSemicolon, t.OpenIntervalInverted, t.CoordsAsSquareBrackets,
	} {
		for l := range s {
			t.known[l] = struct{}{}
		}
	}
}

// Canonical resolves a normalized locale to the identifier the table knows.
// Region-qualified locales the table lists explicitly (such as "pt-pt") keep
// their full form; unknown region variants fall back to their base language.
func (t *Table) Canonical(locale string) string {
	if _, ok := t.known[locale]; ok {
		return locale
	}
	if i := indexDash(locale); i > 0 {
		base := locale[:i]
		if _, ok := t.known[base]; ok {
			return base
		}
	}
	return locale
}

func indexDash(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return i
		}
	}
	return -1
}
