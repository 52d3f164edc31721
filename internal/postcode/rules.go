package postcode

import "strings"

// Outcome is the verdict of a single district rule.
type Outcome int

const (
	NotApplicable Outcome = iota
	Accept
	Reject
)

func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "not_applicable"
	}
}

type districtRule func(c Candidate) Outcome

// Evaluated in order; the first rule that returns something other than
// NotApplicable decides.
var districtRules = []districtRule{
	zeroDistrictRule,
	centralLondonRule,
	nonGeographicRule,
	singleDigitRule,
	doubleDigitRule,
}

func evaluateDistrictRules(c Candidate) Outcome {
	for _, rule := range districtRules {
		if out := rule(c); out != NotApplicable {
			return out
		}
	}
	return Accept
}

func zeroDistrictRule(c Candidate) Outcome {
	if c.District == "0" && !zeroAllowedAreas.has(c.Area) {
		return Reject
	}
	return NotApplicable
}

func centralLondonRule(c Candidate) Outcome {
	for _, prefix := range centralLondonSubdivisionPrefixes {
		if strings.HasPrefix(c.Outward, prefix) && len(c.Outward) > len(prefix) {
			return Accept
		}
	}
	return NotApplicable
}

func nonGeographicRule(c Candidate) Outcome {
	switch c.Area {
	case "BF":
		return Accept
	case "BX":
		return verdict(len(c.District) == 1 && c.District != "0")
	case "XX":
		return verdict(len(c.District) >= 1 && len(c.District) <= 2 && c.District != "0")
	}
	if districts, ok := nonGeographicDistricts[c.Area]; ok && districts.has(c.District) {
		return Accept
	}
	return NotApplicable
}

func singleDigitRule(c Candidate) Outcome {
	if !singleDigitOnlyAreas.has(c.Area) {
		return NotApplicable
	}
	return verdict(len(c.District) == 1)
}

func doubleDigitRule(c Candidate) Outcome {
	if !doubleDigitOnlyAreas.has(c.Area) {
		return NotApplicable
	}
	return verdict(len(c.District) == 2)
}

func verdict(ok bool) Outcome {
	if ok {
		return Accept
	}
	return Reject
}
