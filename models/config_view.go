package models

import "time"

// TokenInfo describes the claims of the static access token that are safe to
// show. The token itself is never exposed.
type TokenInfo struct {
	// IsJWT is false when the token does not parse as a JWT; every other
	// field is then zero.
	IsJWT     bool       `json:"is_jwt"`
	Subject   string     `json:"subject,omitempty"`
	Issuer    string     `json:"issuer,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}

// ConfigView is the redacted view of the resolved frontend configuration
// served by the config endpoint.
type ConfigView struct {
	APIBaseURL         string            `json:"api_base_url"`
	IsLocalDevelopment bool              `json:"is_local_development"`
	AuthEnabled        string            `json:"auth_enabled"`
	AuthRequired       bool              `json:"auth_required"`
	HasAccessToken     bool              `json:"has_access_token"`
	Token              *TokenInfo        `json:"token,omitempty"`
	Sources            map[string]string `json:"sources"`
}
