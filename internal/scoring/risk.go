package scoring

// Risk tier labels, ordered best to worst.
const (
	RiskLow        = "Low"
	RiskMediumLow  = "Medium-Low"
	RiskMedium     = "Medium"
	RiskMediumHigh = "Medium-High"
	RiskHigh       = "High"
)

// Classify maps a clamped score to its risk tier. Thresholds are closed
// on the lower bound and checked in descending order.
func Classify(score int) string {
	switch {
	case score >= 750:
		return RiskLow
	case score >= 700:
		return RiskMediumLow
	case score >= 650:
		return RiskMedium
	case score >= 600:
		return RiskMediumHigh
	default:
		return RiskHigh
	}
}
