// Package scoring implements the deterministic credit scoring engine:
// attribute normalization, weighted scoring, risk tier classification,
// confidence estimation and recommendation generation. Every function
// is pure and total; malformed input degrades to zero contribution,
// never to an error.
package scoring

import (
	"math"

	"github.com/Dan9191/credit-scoring-service/internal/models"
)

const (
	baseScore = 500
	minScore  = 300
	maxScore  = 850
)

// employmentBonus maps employment status to its score contribution.
// Unknown or absent statuses contribute zero.
var employmentBonus = map[string]float64{
	"employed":      40,
	"self-employed": 20,
	"retired":       30,
	"student":       10,
	"unemployed":    -50,
}

// purposeBonus maps loan purpose to its score contribution. Unknown or
// absent purposes contribute zero.
var purposeBonus = map[string]float64{
	"home":      20,
	"education": 15,
	"auto":      10,
	"business":  5,
	"medical":   0,
	"other":     -10,
}

// Assess runs the full pipeline on a raw attribute map and assembles
// the response, echoing the input verbatim.
func Assess(raw map[string]any) models.Prediction {
	p := Normalize(raw)
	score, factors := Score(p)
	return models.Prediction{
		Prediction:      score,
		RiskLevel:       Classify(score),
		Confidence:      Confidence(p.FieldCount),
		InputData:       raw,
		Factors:         factors,
		Recommendations: Recommend(score, p),
	}
}

// Score maps a normalized profile to a clamped integer score and the
// per-factor contribution breakdown. A field supplied as exactly zero
// contributes nothing, same as an absent field; that collapse is
// intentional, see DESIGN.md. The breakdown reuses the same term
// functions as the scoring pass so the two can never drift apart.
func Score(p Profile) (int, models.Factors) {
	base := float64(baseScore)

	if active(p.Age) {
		base += ageTerm(p.Age.Value)
	}
	if active(p.Income) {
		base += incomeTerm(p.Income.Value)
	}
	if active(p.DebtToIncome) {
		base += debtRatioTerm(p.DebtToIncome.Value)
	}
	if active(p.CreditHistoryLen) {
		base += creditHistoryTerm(p.CreditHistoryLen.Value)
	}
	if active(p.NumOpenAccounts) {
		base += openAccountsTerm(p.NumOpenAccounts.Value)
	}
	if active(p.Delinquencies) {
		base += delinquencyTerm(p.Delinquencies.Value)
	}
	if b, ok := employmentBonus[p.EmploymentStatus]; ok {
		base += b
	}
	if active(p.LoanAmount) && active(p.Income) {
		ratio := p.LoanAmount.Value / (p.Income.Value * 12)
		if ratio > 0.5 {
			base -= (ratio - 0.5) * 100
		}
	}
	if b, ok := purposeBonus[p.Purpose]; ok {
		base += b
	}

	score := roundHalfUp(clamp(base, minScore, maxScore))

	factors := models.Factors{}
	if active(p.Age) {
		factors.AgeImpact = roundHalfUp(ageTerm(p.Age.Value))
	}
	if active(p.Income) {
		factors.IncomeImpact = roundHalfUp(incomeTerm(p.Income.Value))
	}
	if active(p.DebtToIncome) {
		factors.DebtRatioImpact = roundHalfUp(debtRatioTerm(p.DebtToIncome.Value))
	}
	if active(p.CreditHistoryLen) {
		factors.CreditHistoryImpact = roundHalfUp(creditHistoryTerm(p.CreditHistoryLen.Value))
	}
	if p.EmploymentStatus != "" {
		factors.EmploymentImpact = int(employmentBonus[p.EmploymentStatus])
	}

	return score, factors
}

// active reports whether a field participates in scoring: present,
// parseable and non-zero.
func active(f Field) bool {
	return f.Valid && f.Value != 0
}

func ageTerm(age float64) float64 {
	switch {
	case age >= 25 && age <= 65:
		return math.Min(50, (age-25)*1.2)
	case age < 25:
		return -(25 - age) * 2
	default:
		return -(age - 65) * 1.5
	}
}

func incomeTerm(income float64) float64 {
	return math.Min(150, income/500)
}

func debtRatioTerm(ratio float64) float64 {
	return -ratio * 200
}

func creditHistoryTerm(years float64) float64 {
	return math.Min(80, years*15)
}

func openAccountsTerm(n float64) float64 {
	switch {
	case n >= 3 && n <= 10:
		return 30
	case n > 10:
		return -(n - 10) * 5
	default:
		return -(3 - n) * 10
	}
}

func delinquencyTerm(count float64) float64 {
	return -count * 50
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// roundHalfUp rounds halves toward positive infinity, so a -42.5
// contribution rounds to -42, not -43.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
