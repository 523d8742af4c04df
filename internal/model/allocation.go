package model

import (
	"fmt"
	"strings"
)

// RiskTier selects one of the fixed investment allocation presets.
type RiskTier string

// Supported risk tiers.
const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// ParseRiskTier parses a tier name, ignoring case.
func ParseRiskTier(s string) (RiskTier, error) {
	switch RiskTier(strings.ToLower(strings.TrimSpace(s))) {
	case RiskLow:
		return RiskLow, nil
	case RiskModerate:
		return RiskModerate, nil
	case RiskHigh:
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk tier %q (expected low, moderate, or high)", s)
	}
}

// Allocation is one bucket of an investment plan.
type Allocation struct {
	Bucket   string
	Fraction float64
	Amount   float64
}
