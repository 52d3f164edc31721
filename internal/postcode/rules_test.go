package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(t *testing.T, raw string) Candidate {
	t.Helper()
	c, err := Parse(raw)
	require.NoError(t, err)
	return c
}

func TestZeroDistrictRule(t *testing.T) {
	assert.Equal(t, NotApplicable, zeroDistrictRule(candidate(t, "BS0 1AA")))
	assert.Equal(t, NotApplicable, zeroDistrictRule(candidate(t, "M1 1AE")))
	assert.Equal(t, Reject, zeroDistrictRule(candidate(t, "ER0 1AA")))
	assert.Equal(t, NotApplicable, zeroDistrictRule(candidate(t, "BS10 1AA")))
}

func TestCentralLondonRule(t *testing.T) {
	t.Run("subdivision letter present", func(t *testing.T) {
		for _, pc := range []string{"EC1A 1BB", "WC1A 1AB", "SW1A 2AA", "W1A 0AX", "EC1P 1ZZ"} {
			assert.Equal(t, Accept, centralLondonRule(candidate(t, pc)), pc)
		}
	})

	t.Run("bare prefix falls through", func(t *testing.T) {
		for _, pc := range []string{"EC1 1BB", "W1 1AA", "NW1W 1BB", "E1W 1AA"} {
			assert.Equal(t, NotApplicable, centralLondonRule(candidate(t, pc)), pc)
		}
	})

	t.Run("unrelated outward", func(t *testing.T) {
		assert.Equal(t, NotApplicable, centralLondonRule(candidate(t, "M1 1AE")))
	})
}

func TestNonGeographicRule(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want Outcome
	}{
		{"BF any district", Candidate{Outward: "BF1", Area: "BF", District: "1"}, Accept},
		{"BF no district", Candidate{Outward: "BF", Area: "BF"}, Accept},
		{"BX single digit", Candidate{Outward: "BX5", Area: "BX", District: "5"}, Accept},
		{"BX two digits", Candidate{Outward: "BX11", Area: "BX", District: "11"}, Reject},
		{"BX zero", Candidate{Outward: "BX0", Area: "BX", District: "0"}, Reject},
		{"XX one digit", Candidate{Outward: "XX1", Area: "XX", District: "1"}, Accept},
		{"XX two digits", Candidate{Outward: "XX10", Area: "XX", District: "10"}, Accept},
		{"XX zero", Candidate{Outward: "XX0", Area: "XX", District: "0"}, Reject},
		{"XX no district", Candidate{Outward: "XX", Area: "XX"}, Reject},
		{"CH range", Candidate{Outward: "CH30", Area: "CH", District: "30"}, Accept},
		{"CH outside range", Candidate{Outward: "CH35", Area: "CH", District: "35"}, NotApplicable},
		{"SR43", Candidate{Outward: "SR43", Area: "SR", District: "43"}, Accept},
		{"area without table", Candidate{Outward: "M1", Area: "M", District: "1"}, NotApplicable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nonGeographicRule(tc.c))
		})
	}
}

func TestDigitCountRules(t *testing.T) {
	assert.Equal(t, Accept, singleDigitRule(candidate(t, "BR9 9AA")))
	assert.Equal(t, Reject, singleDigitRule(candidate(t, "BR10 9AA")))
	assert.Equal(t, NotApplicable, singleDigitRule(candidate(t, "B33 8TH")))

	assert.Equal(t, Accept, doubleDigitRule(candidate(t, "AB10 1AA")))
	assert.Equal(t, Reject, doubleDigitRule(candidate(t, "AB1 1AA")))
	assert.Equal(t, NotApplicable, doubleDigitRule(candidate(t, "B33 8TH")))
}

func TestEvaluateDistrictRules_Precedence(t *testing.T) {
	tests := []struct {
		name string
		pc   string
		want Outcome
	}{
		{"zero gate beats whole-area BF", "BF0 1AA", Reject},
		{"zero gate beats BX", "BX0 1AA", Reject},
		{"non-geographic beats single digit", "SR43 4AE", Accept},
		{"non-geographic beats double digit", "AB99 9ZZ", Accept},
		{"single digit area with two digits", "HA10 1AA", Reject},
		{"double digit area with one digit", "SO1 1AA", Reject},
		{"bare central prefix reaches digit rules", "WC1 1AB", Accept},
		{"default accept", "DN55 1PT", Accept},
		{"default accept ordinary", "W7 2JY", Accept},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, evaluateDistrictRules(candidate(t, tc.pc)))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "accept", Accept.String())
	assert.Equal(t, "reject", Reject.String())
	assert.Equal(t, "not_applicable", NotApplicable.String())
}
