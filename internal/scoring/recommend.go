package scoring

// Advisory messages, in the order the conditions are evaluated.
const (
	msgPayDownDebt      = "Consider paying down existing debt to improve debt-to-income ratio"
	msgOnTimePayments   = "Make all payments on time to build positive payment history"
	msgReduceDebtRatio  = "Reduce debt-to-income ratio below 40% for better approval chances"
	msgLongerHistory    = "Build longer credit history by keeping old accounts open"
	msgFixDelinquencies = "Address any outstanding delinquencies immediately"
	msgExcellentCredit  = "Excellent credit! You qualify for the best rates and terms"
)

// Recommend produces the ordered advisory list for a score and profile.
// Conditions are independent, evaluated in fixed order with no early
// exit. Unlike scoring terms, these read supplied values even when
// zero: an applicant who reports a credit history of 0 years still gets
// the short-history advisory.
func Recommend(score int, p Profile) []string {
	recs := []string{}

	if score < 650 {
		recs = append(recs, msgPayDownDebt, msgOnTimePayments)
	}
	if p.DebtToIncome.Valid && p.DebtToIncome.Value > 0.4 {
		recs = append(recs, msgReduceDebtRatio)
	}
	if p.CreditHistoryLen.Valid && p.CreditHistoryLen.Value < 3 {
		recs = append(recs, msgLongerHistory)
	}
	if p.Delinquencies.Valid && p.Delinquencies.Value > 0 {
		recs = append(recs, msgFixDelinquencies)
	}
	if score >= 750 {
		recs = append(recs, msgExcellentCredit)
	}

	return recs
}
