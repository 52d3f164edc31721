package postcode

type set map[string]struct{}

func newSet(values ...string) set {
	s := make(set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s set) has(v string) bool {
	_, ok := s[v]
	return ok
}

// Areas whose districts are always a single digit.
var singleDigitOnlyAreas = newSet(
	"BR", "FY", "HA", "HD", "HG", "HR", "HS", "HX",
	"JE", "LD", "SM", "SR", "WC", "WN", "ZE",
)

// Areas whose districts are always two digits.
var doubleDigitOnlyAreas = newSet("AB", "LL", "SO")

// Areas where district "0" is allocated.
var zeroAllowedAreas = newSet("BL", "BS", "CM", "CR", "FY", "HA", "PR", "SL", "SS")

// Outward prefixes that are split into lettered sub-districts, e.g. EC1A.
var centralLondonSubdivisionPrefixes = []string{
	"EC1", "EC2", "EC3", "EC4",
	"SW1", "W1", "WC1", "WC2",
	"E1W", "N1C", "N1P", "NW1W", "SE1P",
}

// Non-geographic districts keyed by area. BF, BX and XX are whole-area
// codes and are handled in nonGeographicRule.
var nonGeographicDistricts = map[string]set{
	"AB": newSet("99"),
	"B":  newSet("99"),
	"BS": newSet("98", "99"),
	"BT": newSet("58"),
	"CH": newSet("25", "26", "27", "28", "29", "30", "31", "32", "33", "34", "88", "99"),
	"CM": newSet("92", "98", "99"),
	"CR": newSet("44", "90"),
	"DA": newSet("98"),
	"DE": newSet("99"),
	"DH": newSet("98", "99"),
	"DN": newSet("55"),
	"E":  newSet("98"),
	"EC": newSet("50"),
	"EH": newSet("91", "95", "99"),
	"G":  newSet("58", "79"),
	"IV": newSet("99"),
	"L":  newSet("30", "69", "70"),
	"LS": newSet("98", "99"),
	"M":  newSet("61"),
	"N":  newSet("81"),
	"NE": newSet("82", "83", "85", "88", "92", "98", "99"),
	"NG": newSet("80", "90"),
	"PA": newSet("80"),
	"S":  newSet("95", "96", "97", "98", "99"),
	"SA": newSet("99"),
	"SR": newSet("43"),
	"SW": newSet("95", "99"),
	"WA": newSet("55", "88"),
	"WC": newSet("99"),
	"WV": newSet("98", "99"),
}
