package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://servicodados.ibge.gov.br", 15*time.Second)
//	resp, err := client.R().Get("/api/v1/localidades/estados")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient targeting baseURL. Trailing slashes
// are trimmed from baseURL and a zero timeout leaves resty's default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL prefixes a scheme-less address with http:// and trims
// trailing slashes.
func NormalizeBaseURL(address string) string {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if address == "" {
		return ""
	}
	if strings.HasPrefix(address, "http://") || strings.HasPrefix(address, "https://") {
		return address
	}

	return "http://" + address
}
