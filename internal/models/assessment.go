package models

import (
	"encoding/json"
	"time"
)

// Assessment represents a stored scoring result
type Assessment struct {
	ID          int64           `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Score       int             `json:"score"`
	RiskLevel   string          `json:"risk_level"`
	InputData   json.RawMessage `json:"input_data"`
	ApplicantID *string         `json:"applicant_id"`
	LoanAmount  *float64        `json:"loan_amount"`
	Purpose     *string         `json:"purpose"`
}

// StoreRequest is the payload for persisting a previously computed prediction
type StoreRequest struct {
	Prediction  int            `json:"prediction"`
	RiskLevel   string         `json:"risk_level"`
	InputData   map[string]any `json:"input_data"`
	ApplicantID string         `json:"applicant_id"`
	LoanAmount  *float64       `json:"loan_amount"`
	Purpose     string         `json:"purpose"`
}
