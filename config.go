package tweetfall

import (
	"net/http"
	"time"
)

// ClientConfig holds all configuration for the API client.
type ClientConfig struct {
	// ConsumerKey is the application's OAuth consumer key.
	ConsumerKey string

	// ConsumerSecret is the application's OAuth consumer secret.
	ConsumerSecret string

	// BaseURL overrides the API host. Default: https://api.twitter.com
	BaseURL string

	// HTTPClient overrides the transport used for all requests.
	HTTPClient *http.Client
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout:   time.Minute,
			Transport: newTransport(),
		}
	}
}

// newTransport initializes a tuned http.Transport with pool parameters
// sized for a handful of concurrent media fetches.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
