package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request made through [HTTPClient].
const UserAgent = "dashboard-server"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client rooted at baseURL. Every request is
// bounded by timeout, a zero timeout disables the bound.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", 15*time.Second)
//	resp, err := client.R().SetResult(&out).Get("/chat/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
