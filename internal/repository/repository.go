package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/credit-scoring-service/internal/models"
)

// Repository provides database operations for stored assessments
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const createPredictionsTable = `
	CREATE TABLE IF NOT EXISTS predictions (
		id SERIAL PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL DEFAULT NOW(),
		score INTEGER NOT NULL,
		risk_level VARCHAR(32),
		input_data JSONB,
		applicant_id VARCHAR(64),
		loan_amount NUMERIC,
		purpose VARCHAR(128)
	)`

// EnsureSchema creates the predictions table if it does not exist.
// Safe to call on every startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPredictionsTable); err != nil {
		return fmt.Errorf("failed to ensure predictions table: %w", err)
	}
	return nil
}

// InsertAssessment appends a new assessment row. The store assigns id
// and timestamp; both are written back into the record. Absent optional
// fields are stored as NULL.
func (r *Repository) InsertAssessment(ctx context.Context, a *models.Assessment) error {
	query := `
		INSERT INTO predictions (score, risk_level, input_data, applicant_id, loan_amount, purpose)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, timestamp`
	inputData := "{}"
	if len(a.InputData) > 0 {
		inputData = string(a.InputData)
	}
	err := r.db.QueryRowContext(ctx, query,
		a.Score, a.RiskLevel, inputData, a.ApplicantID, a.LoanAmount, a.Purpose).
		Scan(&a.ID, &a.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	return nil
}

// ListRecentAssessments returns the newest assessments, most recent
// first, never more than limit rows.
func (r *Repository) ListRecentAssessments(ctx context.Context, limit int) ([]models.Assessment, error) {
	query := `
		SELECT id, timestamp, score, risk_level, input_data, applicant_id, loan_amount, purpose
		FROM predictions
		ORDER BY timestamp DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	assessments := make([]models.Assessment, 0, limit)
	for rows.Next() {
		var a models.Assessment
		var riskLevel sql.NullString
		if err := rows.Scan(&a.ID, &a.Timestamp, &a.Score, &riskLevel,
			&a.InputData, &a.ApplicantID, &a.LoanAmount, &a.Purpose); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		a.RiskLevel = riskLevel.String
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}
	return assessments, nil
}

// CountAssessments returns the total number of stored assessments
func (r *Repository) CountAssessments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assessments: %w", err)
	}
	return count, nil
}

// CheckConnection runs a trivial query to confirm the database is
// reachable, returning the selected value.
func (r *Repository) CheckConnection(ctx context.Context) (int, error) {
	var ok int
	err := r.db.QueryRowContext(ctx, `SELECT 1 AS ok`).Scan(&ok)
	if err != nil {
		return 0, fmt.Errorf("database check failed: %w", err)
	}
	return ok, nil
}
