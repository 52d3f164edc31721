package postcode

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedInput is returned when fewer than three characters remain
// after whitespace removal, so no outward/inward split is possible.
var ErrMalformedInput = errors.New("malformed postcode input")

const inwardLen = 3

// Normalize uppercases raw, removes every whitespace character and inserts a
// single space before the last three characters. It does not check the
// result is a real postcode.
func Normalize(raw string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	compact = strings.ToUpper(compact)

	runes := []rune(compact)
	if len(runes) < inwardLen {
		return "", fmt.Errorf("%w: %q has %d characters, need at least %d", ErrMalformedInput, raw, len(runes), inwardLen)
	}

	split := len(runes) - inwardLen
	return string(runes[:split]) + " " + string(runes[split:]), nil
}
