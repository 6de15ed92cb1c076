package handler

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/credit-scoring-service/internal/models"
	"github.com/Dan9191/credit-scoring-service/internal/service"
)

// Handler exposes the HTTP API
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Routes builds the route table
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/db/test", h.DBTest).Methods("GET")
	r.HandleFunc("/model/info", h.ModelInfo).Methods("GET")
	r.HandleFunc("/predict", h.Predict).Methods("POST")
	r.HandleFunc("/predict/store", h.PredictStore).Methods("POST")
	r.HandleFunc("/predictions", h.Predictions).Methods("GET")
	r.HandleFunc("/features/importance", h.FeatureImportance).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "OK",
		Message:   "API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Root describes the service and its endpoints
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ServiceInfo{
		Service: "Credit Scoring API",
		Endpoints: []string{
			"/health", "/predict", "/predict/store", "/predictions",
			"/model/info", "/features/importance", "/db/test", "/metrics",
		},
	})
}

// DBTest runs a trivial query to confirm the database connection
func (h *Handler) DBTest(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.CheckDatabase(r.Context())
	if err != nil {
		h.log.Errorf("DB test failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"db": []map[string]int{{"ok": ok}},
	})
}

// ModelInfo returns the static model descriptor
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ModelInfo{
		ModelName: "Credit Scoring Model",
		Version:   "1.0.0",
		Algorithm: "Random Forest",
		Features:  []string{"age", "income", "loan", "credit_history", "employment_status"},
		Target:    "credit_score",
	})
}

// Predict scores an applicant payload. Any JSON object is accepted;
// unusable attributes simply contribute nothing to the score.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	raw := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Predict(raw))
}

// PredictStore persists a previously computed prediction
func (h *Handler) PredictStore(w http.ResponseWriter, r *http.Request) {
	var req models.StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid JSON body",
		})
		return
	}
	row, err := h.svc.StoreAssessment(r.Context(), req)
	if err != nil {
		h.log.Errorf("Error storing prediction: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to store prediction",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"row":     row,
	})
}

// Predictions lists the most recent stored assessments, newest first
func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.svc.RecentAssessments(r.Context())
	if err != nil {
		h.log.Errorf("Error fetching predictions: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch predictions",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"predictions": assessments})
}

// FeatureImportance returns the static feature-importance table
func (h *Handler) FeatureImportance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]models.FeatureImportance{
		"features": {
			{Feature: "income", Importance: 0.35},
			{Feature: "credit_history", Importance: 0.25},
			{Feature: "age", Importance: 0.20},
			{Feature: "employment_status", Importance: 0.15},
			{Feature: "loan", Importance: 0.05},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
