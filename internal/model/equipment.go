package model

import "fmt"

// CraneCategory identifies the broad mobility class of a crane.
type CraneCategory string

const (
	AllTerrain   CraneCategory = "ALL_TERRAIN"
	Crawler      CraneCategory = "CRAWLER"
	Tower        CraneCategory = "TOWER"
	RoughTerrain CraneCategory = "ROUGH_TERRAIN"
	CarryDeck    CraneCategory = "CARRY_DECK"
)

// ParseCraneCategory converts common spellings ("all terrain", "all-terrain",
// "crawler") into a CraneCategory. Unknown values are rejected here so the
// valuation engine never sees an unclassified unit.
func ParseCraneCategory(s string) (CraneCategory, error) {
	switch NormalizeKey(s) {
	case "allterrain", "at":
		return AllTerrain, nil
	case "crawler":
		return Crawler, nil
	case "tower":
		return Tower, nil
	case "roughterrain", "rt":
		return RoughTerrain, nil
	case "carrydeck", "industrial":
		return CarryDeck, nil
	}
	return "", fmt.Errorf("unknown crane category %q", s)
}

// EquipmentSpec describes one unit to be appraised. It is built once at the
// input boundary and never mutated afterwards.
type EquipmentSpec struct {
	Manufacturer   string
	Model          string
	ModelYear      int
	CapacityTons   float64
	Category       CraneCategory
	OperatingHours int     // 0 means unknown
	Location       string  // free text, may be empty
	AskingPrice    float64 // 0 means no asking price
}
