package scoring

import (
	"strconv"
	"strings"
)

// Field is a numeric attribute that may be absent from the payload.
// Valid is true when the caller supplied the field and it parsed as a
// number; a supplied zero is still Valid.
type Field struct {
	Value float64
	Valid bool
}

// Profile holds the normalized applicant attributes.
type Profile struct {
	Age              Field
	Income           Field
	DebtToIncome     Field
	CreditHistoryLen Field
	NumOpenAccounts  Field
	Delinquencies    Field
	LoanAmount       Field
	EmploymentStatus string
	Purpose          string

	// FieldCount is the number of keys in the raw payload, regardless
	// of whether their values were usable. Confidence only measures how
	// many attributes the caller attempted to supply.
	FieldCount int
}

// Normalize coerces a raw attribute map into a Profile. Numeric fields
// accept JSON numbers and numeric strings; anything else is treated as
// absent. Malformed values never produce an error.
func Normalize(raw map[string]any) Profile {
	return Profile{
		Age:              numericField(raw, "age"),
		Income:           numericField(raw, "income"),
		DebtToIncome:     numericField(raw, "debt_to_income"),
		CreditHistoryLen: numericField(raw, "credit_history_length"),
		NumOpenAccounts:  numericField(raw, "num_open_accounts"),
		Delinquencies:    numericField(raw, "delinquencies"),
		LoanAmount:       numericField(raw, "loan_amount"),
		EmploymentStatus: stringField(raw, "employment_status"),
		Purpose:          stringField(raw, "purpose"),
		FieldCount:       len(raw),
	}
}

func numericField(raw map[string]any, key string) Field {
	v, ok := raw[key]
	if !ok {
		return Field{}
	}
	if n, ok := toNumber(v); ok {
		return Field{Value: n, Valid: true}
	}
	return Field{}
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
