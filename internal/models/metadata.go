package models

// HealthStatus is the /health response
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ServiceInfo describes the API and its endpoints
type ServiceInfo struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
}

// ModelInfo is the static model descriptor
type ModelInfo struct {
	ModelName string   `json:"model_name"`
	Version   string   `json:"version"`
	Algorithm string   `json:"algorithm"`
	Features  []string `json:"features"`
	Target    string   `json:"target"`
}

// FeatureImportance is one entry of the static feature-importance table
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}
