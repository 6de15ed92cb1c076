package models

// Factors breaks down the signed contribution of each headline attribute
// to the base score, for explainability.
type Factors struct {
	AgeImpact           int `json:"age_impact"`
	IncomeImpact        int `json:"income_impact"`
	DebtRatioImpact     int `json:"debt_ratio_impact"`
	CreditHistoryImpact int `json:"credit_history_impact"`
	EmploymentImpact    int `json:"employment_impact"`
}

// Prediction is the full scoring response for one applicant
type Prediction struct {
	Prediction      int            `json:"prediction"`
	RiskLevel       string         `json:"risk_level"`
	Confidence      float64        `json:"confidence"`
	InputData       map[string]any `json:"input_data"`
	Factors         Factors        `json:"factors"`
	Recommendations []string       `json:"recommendations"`
}
