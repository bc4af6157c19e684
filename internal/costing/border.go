package costing

import "strings"

// Country identifies which side of the border a location falls on.
// The default detector uses CountryA for Canada and CountryB for the
// United States.
type Country int

const (
	CountryUnknown Country = iota
	CountryA
	CountryB
)

var canadaKeywords = []string{
	"canada",
	"ontario",
	"quebec",
	"québec",
	"british columbia",
	"alberta",
	"manitoba",
	"saskatchewan",
	"nova scotia",
	"new brunswick",
	"newfoundland",
	"labrador",
	"prince edward island",
	"yukon",
	"northwest territories",
	"nunavut",
}

var unitedStatesKeywords = []string{
	"usa",
	"u.s.a",
	"united states",
	"alabama", "alaska", "arizona", "arkansas", "california",
	"colorado", "connecticut", "delaware", "florida", "georgia",
	"hawaii", "idaho", "illinois", "indiana", "iowa",
	"kansas", "kentucky", "louisiana", "maine", "maryland",
	"massachusetts", "michigan", "minnesota", "mississippi", "missouri",
	"montana", "nebraska", "nevada", "new hampshire", "new jersey",
	"new mexico", "new york", "north carolina", "north dakota", "ohio",
	"oklahoma", "oregon", "pennsylvania", "rhode island", "south carolina",
	"south dakota", "tennessee", "texas", "utah", "vermont",
	"virginia", "washington", "west virginia", "wisconsin", "wyoming",
}

// Postal abbreviations only match as the first word after a comma,
// as in "Toronto, ON" or "Detroit, MI 48201".
var canadaCodes = []string{
	"on", "qc", "bc", "ab", "mb", "sk", "ns", "nb", "nl", "pe", "yt", "nt", "nu",
}

var unitedStatesCodes = []string{
	"al", "ak", "az", "ar", "ca", "co", "ct", "de", "fl", "ga",
	"hi", "id", "il", "in", "ia", "ks", "ky", "la", "me", "md",
	"ma", "mi", "mn", "ms", "mo", "mt", "ne", "nv", "nh", "nj",
	"nm", "ny", "nc", "nd", "oh", "ok", "or", "pa", "ri", "sc",
	"sd", "tn", "tx", "ut", "vt", "va", "wa", "wv", "wi", "wy",
}

// BorderDetector classifies free-text locations by keyword membership.
// It does no geocoding.
type BorderDetector struct {
	countryA []string
	countryB []string
	codesA   map[string]bool
	codesB   map[string]bool
}

// NewBorderDetector builds a detector from two keyword sets. Keywords are
// matched case-insensitively as substrings.
func NewBorderDetector(countryA, countryB []string) BorderDetector {
	return BorderDetector{
		countryA: lowerAll(countryA),
		countryB: lowerAll(countryB),
	}
}

// WithCodes returns a copy of d that also recognizes postal abbreviations.
func (d BorderDetector) WithCodes(codesA, codesB []string) BorderDetector {
	d.codesA = codeSet(codesA)
	d.codesB = codeSet(codesB)
	return d
}

// DefaultBorderDetector returns the Canada / United States detector.
func DefaultBorderDetector() BorderDetector {
	return NewBorderDetector(canadaKeywords, unitedStatesKeywords).
		WithCodes(canadaCodes, unitedStatesCodes)
}

// Classify returns the country a location matches. Country A is checked
// first, names then codes, so a location naming both countries resolves to A.
func (d BorderDetector) Classify(location string) Country {
	loc := strings.ToLower(location)
	if loc == "" {
		return CountryUnknown
	}
	codes := regionCodes(loc)
	if containsAny(loc, d.countryA) || matchesCode(codes, d.codesA) {
		return CountryA
	}
	if containsAny(loc, d.countryB) || matchesCode(codes, d.codesB) {
		return CountryB
	}
	return CountryUnknown
}

// IsCrossBorder reports whether one endpoint is in each country.
func (d BorderDetector) IsCrossBorder(pickup, delivery string) bool {
	from := d.Classify(pickup)
	to := d.Classify(delivery)
	return (from == CountryA && to == CountryB) ||
		(from == CountryB && to == CountryA)
}

// IsCrossBorder checks two locations with the default detector.
func IsCrossBorder(pickup, delivery string) bool {
	return DefaultBorderDetector().IsCrossBorder(pickup, delivery)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// regionCodes returns the first word of every comma-separated segment
// after the first, with periods stripped.
func regionCodes(loc string) []string {
	parts := strings.Split(loc, ",")
	if len(parts) < 2 {
		return nil
	}
	var codes []string
	for _, part := range parts[1:] {
		fields := strings.Fields(strings.ReplaceAll(part, ".", ""))
		if len(fields) > 0 {
			codes = append(codes, fields[0])
		}
	}
	return codes
}

func matchesCode(codes []string, set map[string]bool) bool {
	for _, c := range codes {
		if set[c] {
			return true
		}
	}
	return false
}

func codeSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[strings.ToLower(c)] = true
	}
	return set
}
