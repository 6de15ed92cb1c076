package service

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/credit-scoring-service/internal/config"
	"github.com/Dan9191/credit-scoring-service/internal/metrics"
	"github.com/Dan9191/credit-scoring-service/internal/models"
	"github.com/Dan9191/credit-scoring-service/internal/repository"
	"github.com/Dan9191/credit-scoring-service/internal/scoring"
)

// recentLimit caps how many stored assessments a listing returns.
const recentLimit = 20

const persistTimeout = 5 * time.Second

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config

	persistCh chan *models.Assessment
	done      chan struct{}
	cron      *cron.Cron
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		log:       log,
		config:    cfg,
		persistCh: make(chan *models.Assessment, 64),
		done:      make(chan struct{}),
	}
}

// Predict scores an applicant payload. Scoring never fails; persistence,
// when enabled, happens in the background and cannot affect the result.
func (s *Service) Predict(raw map[string]any) models.Prediction {
	result := scoring.Assess(raw)
	metrics.AssessmentsTotal.WithLabelValues(result.RiskLevel).Inc()
	s.log.WithFields(logrus.Fields{
		"score":      result.Prediction,
		"risk_level": result.RiskLevel,
		"confidence": result.Confidence,
	}).Info("Assessment computed")

	if s.config.StorePredictions {
		s.enqueue(result)
	}
	return result
}

// enqueue hands a computed prediction to the persist worker. A full
// buffer drops the record with a warning rather than blocking the
// response path.
func (s *Service) enqueue(p models.Prediction) {
	inputJSON, err := json.Marshal(p.InputData)
	if err != nil {
		s.log.Errorf("Failed to encode input data for persistence: %v", err)
		return
	}
	profile := scoring.Normalize(p.InputData)
	a := &models.Assessment{
		Score:     p.Prediction,
		RiskLevel: p.RiskLevel,
		InputData: inputJSON,
		Purpose:   nullIfEmpty(profile.Purpose),
	}
	if profile.LoanAmount.Valid && profile.LoanAmount.Value != 0 {
		amount := profile.LoanAmount.Value
		a.LoanAmount = &amount
	}
	select {
	case s.persistCh <- a:
	default:
		s.log.Warn("Persist queue full, dropping assessment")
	}
}

// StoreAssessment persists an explicitly submitted prediction and
// returns the stored row with its assigned id and timestamp. Absent
// optional fields are stored as NULL; no validation is applied.
func (s *Service) StoreAssessment(ctx context.Context, req models.StoreRequest) (*models.Assessment, error) {
	inputJSON, err := json.Marshal(req.InputData)
	if err != nil || req.InputData == nil {
		inputJSON = []byte("{}")
	}
	a := &models.Assessment{
		Score:       req.Prediction,
		RiskLevel:   req.RiskLevel,
		InputData:   inputJSON,
		ApplicantID: nullIfEmpty(req.ApplicantID),
		LoanAmount:  nullIfZero(req.LoanAmount),
		Purpose:     nullIfEmpty(req.Purpose),
	}
	if err := s.repo.InsertAssessment(ctx, a); err != nil {
		metrics.StoreErrorsTotal.Inc()
		return nil, err
	}
	s.log.Infof("Assessment stored: id=%d score=%d", a.ID, a.Score)
	return a, nil
}

// RecentAssessments returns the newest stored assessments, up to 20
func (s *Service) RecentAssessments(ctx context.Context) ([]models.Assessment, error) {
	return s.repo.ListRecentAssessments(ctx, recentLimit)
}

// CheckDatabase confirms the store is reachable
func (s *Service) CheckDatabase(ctx context.Context) (int, error) {
	return s.repo.CheckConnection(ctx)
}

// Start launches the persist worker and the scheduled stats job
func (s *Service) Start() {
	go s.persistLoop()

	c := cron.New()
	if _, err := c.AddFunc(s.config.StatsSchedule, s.logStoreStats); err != nil {
		s.log.Errorf("Failed to schedule stats job: %v", err)
		return
	}
	c.Start()
	s.cron = c
}

// Stop shuts down the scheduled job and drains the persist queue
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	close(s.persistCh)
	<-s.done
}

func (s *Service) persistLoop() {
	for a := range s.persistCh {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err := s.repo.InsertAssessment(ctx, a)
		cancel()
		if err != nil {
			metrics.StoreErrorsTotal.Inc()
			s.log.Errorf("Failed to persist assessment: %v", err)
			continue
		}
		s.log.Debugf("Assessment persisted: id=%d", a.ID)
	}
	close(s.done)
}

func (s *Service) logStoreStats() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	count, err := s.repo.CountAssessments(ctx)
	if err != nil {
		s.log.Warnf("Store stats unavailable: %v", err)
		return
	}
	s.log.WithField("stored_assessments", count).Info("Assessment store stats")
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(f *float64) *float64 {
	if f == nil || *f == 0 {
		return nil
	}
	return f
}
