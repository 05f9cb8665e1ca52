package models

// BackendStatus is the result of probing the backend health endpoint.
type BackendStatus struct {
	APIBaseURL string `json:"api_base_url"`
	Reachable  bool   `json:"reachable"`
	LatencyMS  int64  `json:"latency_ms"`
	Error      string `json:"error,omitempty"`
}
