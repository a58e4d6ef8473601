package domain

// ComponentHealth is the outcome of one readiness check.
type ComponentHealth struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// HealthReport aggregates every readiness check.
type HealthReport struct {
	Healthy    bool              `json:"healthy"`
	Components []ComponentHealth `json:"components"`
}
