package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// equipmentRequest is the wire form of an appraisal request. Numeric fields
// are typed, so non-numeric input fails at unmarshal rather than reaching
// the engine.
type equipmentRequest struct {
	Manufacturer   string  `yaml:"manufacturer"`
	Model          string  `yaml:"model"`
	ModelYear      int     `yaml:"model_year"`
	CapacityTons   float64 `yaml:"capacity_tons"`
	Category       string  `yaml:"category"`
	OperatingHours int     `yaml:"operating_hours"`
	Location       string  `yaml:"location"`
	AskingPrice    float64 `yaml:"asking_price"`
}

// ParseEquipmentRequest builds a validated EquipmentSpec from a YAML
// request document. This is the only place malformed input is rejected;
// past this boundary the engine assumes a well-formed spec.
func ParseEquipmentRequest(data []byte) (*EquipmentSpec, error) {
	var req equipmentRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}

	if req.Manufacturer == "" {
		return nil, fmt.Errorf("manufacturer is required")
	}
	if req.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if req.ModelYear < 1900 || req.ModelYear > time.Now().Year()+1 {
		return nil, fmt.Errorf("model_year %d out of range", req.ModelYear)
	}
	if req.CapacityTons <= 0 {
		return nil, fmt.Errorf("capacity_tons must be positive")
	}
	if req.OperatingHours < 0 {
		return nil, fmt.Errorf("operating_hours must not be negative")
	}
	if req.AskingPrice < 0 {
		return nil, fmt.Errorf("asking_price must not be negative")
	}

	category, err := ParseCraneCategory(req.Category)
	if err != nil {
		return nil, err
	}

	return &EquipmentSpec{
		Manufacturer:   req.Manufacturer,
		Model:          req.Model,
		ModelYear:      req.ModelYear,
		CapacityTons:   req.CapacityTons,
		Category:       category,
		OperatingHours: req.OperatingHours,
		Location:       req.Location,
		AskingPrice:    req.AskingPrice,
	}, nil
}
