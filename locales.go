package gosugg

import "strings"

// LanguageNames maps normalized locale codes to human-readable names, used
// when a fallback provider needs a prompt-friendly language name.
var LanguageNames = map[string]string{
	"az":    "Azerbaijani",
	"bg":    "Bulgarian",
	"bn":    "Bengali",
	"cs":    "Czech",
	"da":    "Danish",
	"de":    "German",
	"el":    "Greek",
	"en":    "English",
	"es":    "Spanish",
	"et":    "Estonian",
	"fa":    "Persian",
	"fi":    "Finnish",
	"fr":    "French",
	"hi":    "Hindi",
	"hu":    "Hungarian",
	"hy":    "Armenian",
	"id":    "Indonesian",
	"it":    "Italian",
	"ja":    "Japanese",
	"ka":    "Georgian",
	"ko":    "Korean",
	"lt":    "Lithuanian",
	"lv":    "Latvian",
	"nb":    "Norwegian Bokmål",
	"nl":    "Dutch",
	"pl":    "Polish",
	"ps":    "Pashto",
	"pt":    "Portuguese (Brazil)",
	"pt-pt": "Portuguese (Portugal)",
	"ro":    "Romanian",
	"ru":    "Russian",
	"sk":    "Slovak",
	"sq":    "Albanian",
	"sr":    "Serbian",
	"sv":    "Swedish",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
	"vi":    "Vietnamese",
	"zh":    "Chinese",
}

// LanguageName returns the human-readable name for a locale code, falling
// back to the code itself.
func LanguageName(locale string) string {
	locale = NormalizeLocale(locale)
	if name, ok := LanguageNames[locale]; ok {
		return name
	}
	if name, ok := LanguageNames[BaseLocale(locale)]; ok {
		return name
	}
	return locale
}

// NormalizeLocale converts a locale identifier to the canonical lowercase,
// dash-separated form ("pt_PT" -> "pt-pt").
func NormalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}

// BaseLocale extracts the base language code ("pt" from "pt-pt").
func BaseLocale(locale string) string {
	locale = NormalizeLocale(locale)
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}

// IsSourceLocale reports whether the locale is the engine's source language;
// suggestion is a no-op in that case.
func IsSourceLocale(locale string) bool {
	return BaseLocale(locale) == "en"
}
