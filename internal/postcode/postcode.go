package postcode

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// Candidate is a normalized postcode split into its parts. It is derived
// from a single input and never modified.
type Candidate struct {
	Raw        string
	Normalized string
	Outward    string
	Inward     string
	Area       string
	District   string
}

// Parse normalizes raw and splits it into outward and inward codes.
func Parse(raw string) (Candidate, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return Candidate{}, err
	}

	outward, inward, _ := strings.Cut(normalized, " ")
	area, district := splitOutward(outward)

	return Candidate{
		Raw:        raw,
		Normalized: normalized,
		Outward:    outward,
		Inward:     inward,
		Area:       area,
		District:   district,
	}, nil
}

func splitOutward(outward string) (area, district string) {
	i := strings.IndexFunc(outward, func(r rune) bool { return !unicode.IsLetter(r) })
	if i < 0 {
		return outward, ""
	}
	area = outward[:i]
	rest := outward[i:]
	j := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
	if j < 0 {
		return area, rest
	}
	return area, rest[:j]
}

// PassesDistrictRules applies the administrative district rules. It assumes
// the candidate already matched the grammar. The special literals always pass.
func (c Candidate) PassesDistrictRules() bool {
	if isSpecialCase(c.Normalized) {
		return true
	}
	return evaluateDistrictRules(c) == Accept
}

// Reason says which stage rejected a postcode.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonMalformed Reason = "malformed"
	ReasonStructure Reason = "structure"
	ReasonDistrict  Reason = "district"
)

// Result is the outcome of checking one input.
type Result struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	Reason     Reason `json:"reason,omitempty"`
}

// Checker validates postcodes and reports rejected inputs to its logger.
// Logging never affects the verdict.
type Checker struct {
	log zerolog.Logger
}

func NewChecker(log zerolog.Logger) *Checker {
	return &Checker{log: log}
}

func (ch *Checker) Check(raw string) Result {
	c, err := Parse(raw)
	if err != nil {
		ch.log.Debug().Err(err).Str("postcode", raw).Msg("postcode too short to normalize")
		return Result{Raw: raw, Reason: ReasonMalformed}
	}

	res := Result{Raw: raw, Normalized: c.Normalized}
	switch {
	case !MatchesGrammar(c.Normalized):
		res.Reason = ReasonStructure
	case !c.PassesDistrictRules():
		res.Reason = ReasonDistrict
	default:
		res.Valid = true
	}

	if !res.Valid {
		ch.log.Debug().
			Str("postcode", raw).
			Str("normalized", res.Normalized).
			Str("reason", string(res.Reason)).
			Msg("postcode rejected")
	}
	return res
}

func (ch *Checker) Validate(raw string) bool {
	return ch.Check(raw).Valid
}

var defaultChecker = NewChecker(zerolog.Nop())

// Validate reports whether raw is a valid UK postcode. Input too short to
// normalize is simply invalid.
func Validate(raw string) bool {
	return defaultChecker.Validate(raw)
}

// Check is Validate with the normalized form and rejection reason.
func Check(raw string) Result {
	return defaultChecker.Check(raw)
}
