package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesGrammar(t *testing.T) {
	t.Run("accepted shapes", func(t *testing.T) {
		for _, pc := range []string{
			"M1 1AE",   // A9
			"B33 8TH",  // A99
			"CR2 6XH",  // AA9
			"DN55 1PT", // AA99
			"W1A 0AX",  // A9A
			"EC1A 1BB", // AA9A
			"ec1a 1bb",
			"GIR 0AA",
			"gir 0aa",
			"XM4 5HQ",
			"SAN TA1",
		} {
			assert.True(t, MatchesGrammar(pc), "expected %q to match", pc)
		}
	})

	t.Run("rejected shapes", func(t *testing.T) {
		for _, pc := range []string{
			"",
			" EC1",
			"EC1A1BB",
			"EC1A  1BB",
			"123 456",
			"E C1!",
			"AA@ 9AA",
			"AB CDE",
			"W1 A0A",
			"W1 AAX",
			"M11 AE1",
			"ABC1 1AA",
			"A123 1AA",
		} {
			assert.False(t, MatchesGrammar(pc), "expected %q not to match", pc)
		}
	})

	t.Run("forbidden letters", func(t *testing.T) {
		for _, pc := range []string{
			"Q1 1AA",   // Q first
			"V1 1AA",   // V first
			"X1 1AA",   // X first
			"AI1 1AA",  // I second
			"AJ1 1AA",  // J second
			"ZZ1 1ZZ",  // Z second
			"W1I 1AA",  // I in A9A subdivision
			"W1L 1AA",  // L in A9A subdivision
			"EC1Z 1BB", // Z in AA9A subdivision
			"EC1C 1BB", // C in AA9A subdivision
			"M1 1CA",   // C inward
			"M1 1AI",   // I inward
			"M1 1KA",   // K inward
			"M1 1AM",   // M inward
			"M1 1OA",   // O inward
			"M1 1AV",   // V inward
		} {
			assert.False(t, MatchesGrammar(pc), "expected %q not to match", pc)
		}
	})
}

func TestMatchesGrammar_NonASCIILetters(t *testing.T) {
	// U+212A KELVIN SIGN case-folds to K but is not a postcode letter.
	for _, pc := range []string{
		"\u212AA1 1AA",
		"E\u212A1 1AA",
		"W1\u212A 1AA",
		"M1 1A\u212A",
	} {
		assert.False(t, MatchesGrammar(pc), "expected %q not to match", pc)
	}
}
