package types

// RiskLevel represents a coarse interpretation of a total risk score
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// String returns the string representation of RiskLevel
func (r RiskLevel) String() string {
	return string(r)
}

// Label returns a capitalized human-readable form for reports
func (r RiskLevel) Label() string {
	switch r {
	case RiskLevelHigh:
		return "High"
	case RiskLevelMedium:
		return "Medium"
	case RiskLevelLow:
		return "Low"
	default:
		return string(r)
	}
}
