package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/credit-scoring-service/internal/models"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS predictions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssessmentAssignsIDAndTimestamp(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("INSERT INTO predictions").
		WithArgs(654, "Medium", `{"age":35}`, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(7, now))

	a := &models.Assessment{
		Score:     654,
		RiskLevel: "Medium",
		InputData: json.RawMessage(`{"age":35}`),
	}
	require.NoError(t, repo.InsertAssessment(context.Background(), a))
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, now, a.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssessmentDefaultsEmptyInput(t *testing.T) {
	repo, mock := newMockRepo(t)
	applicant := "abc-123"
	loan := 20000.0
	purpose := "home"
	mock.ExpectQuery("INSERT INTO predictions").
		WithArgs(720, "Medium-Low", "{}", applicant, loan, purpose).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(1, time.Now()))

	a := &models.Assessment{
		Score:       720,
		RiskLevel:   "Medium-Low",
		ApplicantID: &applicant,
		LoanAmount:  &loan,
		Purpose:     &purpose,
	}
	require.NoError(t, repo.InsertAssessment(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAssessmentSurfacesError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO predictions").
		WillReturnError(assert.AnError)

	a := &models.Assessment{Score: 500, RiskLevel: "High"}
	err := repo.InsertAssessment(context.Background(), a)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestListRecentAssessments(t *testing.T) {
	repo, mock := newMockRepo(t)
	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "timestamp", "score", "risk_level", "input_data",
		"applicant_id", "loan_amount", "purpose",
	}).
		AddRow(2, newer, 720, "Medium-Low", []byte(`{"income":5000}`), nil, nil, nil).
		AddRow(1, older, 610, "Medium-High", []byte(`{}`), "a-1", 1000.0, "auto")
	mock.ExpectQuery("SELECT (.+) FROM predictions ORDER BY timestamp DESC").
		WithArgs(20).
		WillReturnRows(rows)

	got, err := repo.ListRecentAssessments(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "Medium-Low", got[0].RiskLevel)
	assert.True(t, got[0].Timestamp.After(got[1].Timestamp))
	assert.Nil(t, got[0].ApplicantID)

	require.NotNil(t, got[1].ApplicantID)
	assert.Equal(t, "a-1", *got[1].ApplicantID)
	require.NotNil(t, got[1].LoanAmount)
	assert.Equal(t, 1000.0, *got[1].LoanAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentAssessmentsEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM predictions").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "timestamp", "score", "risk_level", "input_data",
			"applicant_id", "loan_amount", "purpose",
		}))

	got, err := repo.ListRecentAssessments(context.Background(), 20)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCountAssessments(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountAssessments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestCheckConnection(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT 1 AS ok").
		WillReturnRows(sqlmock.NewRows([]string{"ok"}).AddRow(1))

	ok, err := repo.CheckConnection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ok)

	mock.ExpectQuery("SELECT 1 AS ok").WillReturnError(assert.AnError)
	_, err = repo.CheckConnection(context.Background())
	assert.Error(t, err)
}
