package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Provider  string `json:"provider"`
	Timestamp int64  `json:"timestamp"`
}
