package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ec1a1bb", "EC1A 1BB"},
		{"  w1a0ax ", "W1A 0AX"},
		{"   m11ae", "M1 1AE"},
		{"dn551pt", "DN55 1PT"},
		{"GIR0AA", "GIR 0AA"},
		{"EC1A 1BB", "EC1A 1BB"},
		{"e c 1 a 1 b b", "EC1A 1BB"},
		{"sw1a\t2aa\n", "SW1A 2AA"},
		{"zz1 1zz", "ZZ1 1ZZ"},
		{"ZZ99 9ZZ", "ZZ99 9ZZ"},
		{"abc", " ABC"},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := Normalize(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_MalformedInput(t *testing.T) {
	for _, raw := range []string{"", " ", "a", "ab", "  a b  ", "\t\n"} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrMalformedInput, "input %q", raw)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"ec1a1bb", "  w1a0ax ", "dn551pt", "ABCDE", "abc", "123 456", "EC1!", "m1 1ae1"}

	for _, raw := range inputs {
		once, err := Normalize(raw)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", raw)
	}
}
