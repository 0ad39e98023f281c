package valuation

import "strings"

// Region is one of six coarse North-American demand regions.
type Region string

const (
	RegionGulfCoast Region = "GULF_COAST"
	RegionWestCoast Region = "WEST_COAST"
	RegionNortheast Region = "NORTHEAST"
	RegionSoutheast Region = "SOUTHEAST"
	RegionMountain  Region = "MOUNTAIN"
	RegionMidwest   Region = "MIDWEST"
)

// regionMultipliers reflects relative regional demand for lifting capacity.
// Gulf-coast energy work commands the largest premium.
var regionMultipliers = map[Region]float64{
	RegionGulfCoast: 1.20,
	RegionWestCoast: 1.15,
	RegionNortheast: 1.08,
	RegionSoutheast: 1.05,
	RegionMidwest:   1.00,
	RegionMountain:  0.95,
}

// regionStateCodes maps two-letter state codes (matched as whole tokens)
// to their region.
var regionStateCodes = map[string]Region{
	"tx": RegionGulfCoast, "la": RegionGulfCoast, "ok": RegionGulfCoast, "ms": RegionGulfCoast,
	"ca": RegionWestCoast, "wa": RegionWestCoast, "or": RegionWestCoast, "nv": RegionWestCoast,
	"ny": RegionNortheast, "nj": RegionNortheast, "pa": RegionNortheast, "ma": RegionNortheast,
	"ct": RegionNortheast, "md": RegionNortheast,
	"fl": RegionSoutheast, "ga": RegionSoutheast, "nc": RegionSoutheast, "sc": RegionSoutheast,
	"tn": RegionSoutheast, "al": RegionSoutheast, "va": RegionSoutheast,
	"co": RegionMountain, "ut": RegionMountain, "az": RegionMountain, "nm": RegionMountain,
	"id": RegionMountain, "mt": RegionMountain, "wy": RegionMountain,
}

// regionKeywords maps city/state names (matched as substrings, first hit
// wins) to regions. Ordered so classification is deterministic when a
// location mentions more than one place.
var regionKeywords = []struct {
	kw     string
	region Region
}{
	{"houston", RegionGulfCoast}, {"dallas", RegionGulfCoast}, {"austin", RegionGulfCoast},
	{"san antonio", RegionGulfCoast}, {"new orleans", RegionGulfCoast}, {"tulsa", RegionGulfCoast},
	{"texas", RegionGulfCoast}, {"louisiana", RegionGulfCoast}, {"oklahoma", RegionGulfCoast}, {"gulf", RegionGulfCoast},
	{"los angeles", RegionWestCoast}, {"san francisco", RegionWestCoast}, {"seattle", RegionWestCoast},
	{"portland", RegionWestCoast}, {"sacramento", RegionWestCoast}, {"san diego", RegionWestCoast},
	{"california", RegionWestCoast}, {"oregon", RegionWestCoast},
	{"new york", RegionNortheast}, {"boston", RegionNortheast}, {"philadelphia", RegionNortheast},
	{"pittsburgh", RegionNortheast}, {"newark", RegionNortheast}, {"baltimore", RegionNortheast},
	{"atlanta", RegionSoutheast}, {"miami", RegionSoutheast}, {"tampa", RegionSoutheast},
	{"charlotte", RegionSoutheast}, {"nashville", RegionSoutheast}, {"orlando", RegionSoutheast},
	{"florida", RegionSoutheast}, {"georgia", RegionSoutheast},
	{"denver", RegionMountain}, {"phoenix", RegionMountain}, {"salt lake", RegionMountain},
	{"albuquerque", RegionMountain}, {"boise", RegionMountain},
	{"arizona", RegionMountain}, {"colorado", RegionMountain},
	{"chicago", RegionMidwest}, {"detroit", RegionMidwest}, {"minneapolis", RegionMidwest},
	{"cleveland", RegionMidwest}, {"kansas city", RegionMidwest}, {"st louis", RegionMidwest},
}

// classifyRegion resolves a free-text location to a Region. Unrecognized or
// empty locations default to the midwest, whose multiplier is neutral.
func classifyRegion(location string) Region {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return RegionMidwest
	}

	for _, e := range regionKeywords {
		if strings.Contains(loc, e.kw) {
			return e.region
		}
	}

	// State codes only match as standalone tokens so "Clayton" never reads
	// as "LA".
	for _, tok := range strings.FieldsFunc(loc, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if region, ok := regionStateCodes[tok]; ok {
			return region
		}
	}

	return RegionMidwest
}

// regionalMultiplier returns the demand multiplier for a location.
func regionalMultiplier(location string) (Region, float64) {
	region := classifyRegion(location)
	return region, regionMultipliers[region]
}
