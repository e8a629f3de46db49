// Package gosugg suggests translations for untranslated strings by reusing
// translations already supplied for structurally similar strings.
//
// Gosugg never translates natural language itself. It groups strings whose
// natural-language skeletons match once math expressions, graphie/image
// references and widget placeholders are masked out, derives a reusable
// template from one translated exemplar per group, and replays that template
// against the remaining strings in the group. Embedded math is rewritten to
// the target locale's notation conventions (decimal marks, thousands
// separators, trig spellings, interval brackets, numeral scripts) by the
// notation subpackage.
//
// Basic usage:
//
//	import (
//	    "github.com/lingoreef/gosugg"
//	)
//
//	type item struct{ english, translated string }
//
//	func main() {
//	    corpus := []item{
//	        {"simplify $2x = 4$", "simplifiez $2x = 4$"},
//	        {"simplify $3x = 9$", ""},
//	    }
//
//	    engine := gosugg.NewEngine(corpus,
//	        func(it item) string { return it.english },
//	        func(it item) string { return it.translated },
//	        "fr",
//	    )
//
//	    for _, s := range engine.Suggest(corpus[1:]) {
//	        if s.Ok {
//	            fmt.Println(s.Text) // simplifiez $3x = 9$
//	        }
//	    }
//	}
//
// Every suggestion is either the exact expected transformation or an explicit
// absence signal; ambiguous or inconsistent inputs never produce a partially
// substituted string.
package gosugg
