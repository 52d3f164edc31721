package postcode

import (
	"regexp"
	"strings"
)

// Letter classes by position, following the Royal Mail allocation rules.
const (
	firstLetter     = `[A-PR-UWYZ]`
	secondLetter    = `[A-HK-Y]`
	subdivisionA9A  = `[A-HJKPSTUW]`
	subdivisionAA9A = `[ABEHMNPRV-Y]`
	inwardLetter    = `[ABD-HJLNP-UW-Z]`
)

var specialCases = map[string]struct{}{
	"GIR 0AA": {},
	"XM4 5HQ": {},
	"SAN TA1": {},
}

var grammar = regexp.MustCompile(`^(?:` +
	firstLetter + `[0-9]{1,2}` + `|` +
	firstLetter + secondLetter + `[0-9]{1,2}` + `|` +
	firstLetter + `[0-9]` + subdivisionA9A + `|` +
	firstLetter + secondLetter + `[0-9]` + subdivisionAA9A +
	`) [0-9]` + inwardLetter + `{2}$`)

// MatchesGrammar reports whether normalized has the structure of a UK
// postcode. Letters are compared in upper case and only ASCII letters
// match. It knows nothing about which areas exist.
func MatchesGrammar(normalized string) bool {
	upper := strings.ToUpper(normalized)
	if isSpecialCase(upper) {
		return true
	}
	return grammar.MatchString(upper)
}

func isSpecialCase(normalized string) bool {
	_, ok := specialCases[strings.ToUpper(normalized)]
	return ok
}
