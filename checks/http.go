package checks

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonwraymond/healthops/health"
)

// HTTPConfig configures the HTTP endpoint checker.
type HTTPConfig struct {
	// URL is the endpoint to probe with a GET request.
	URL string

	// ExpectStatus is the status code considered healthy.
	// Default: 200.
	ExpectStatus int

	// Client is the HTTP client to probe with.
	// Default: http.DefaultClient.
	Client *http.Client
}

// HTTP probes an HTTP endpoint and maps the response status to a health
// status: the expected code is Healthy, any other 2xx/3xx is Degraded, and
// everything else (including transport errors) is Unhealthy.
type HTTP struct {
	config HTTPConfig
}

// NewHTTP creates an HTTP endpoint checker.
func NewHTTP(config HTTPConfig) *HTTP {
	if config.ExpectStatus == 0 {
		config.ExpectStatus = http.StatusOK
	}
	if config.Client == nil {
		config.Client = http.DefaultClient
	}
	return &HTTP{config: config}
}

// Check implements health.Checker.
func (h *HTTP) Check(ctx context.Context) health.Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.config.URL, nil)
	if err != nil {
		return health.Unhealthy("invalid probe URL", err)
	}

	resp, err := h.config.Client.Do(req)
	if err != nil {
		return health.Unhealthy(
			fmt.Sprintf("request to %s failed", h.config.URL),
			err,
		).WithDetails(map[string]any{"url": h.config.URL})
	}
	defer resp.Body.Close()

	details := map[string]any{
		"url":         h.config.URL,
		"status_code": resp.StatusCode,
	}

	switch {
	case resp.StatusCode == h.config.ExpectStatus:
		return health.Healthy(fmt.Sprintf("%s returned %d", h.config.URL, resp.StatusCode)).WithDetails(details)
	case resp.StatusCode < 400:
		return health.Degraded(
			fmt.Sprintf("%s returned %d, expected %d", h.config.URL, resp.StatusCode, h.config.ExpectStatus),
		).WithDetails(details)
	default:
		return health.Unhealthy(
			fmt.Sprintf("%s returned %d", h.config.URL, resp.StatusCode),
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		).WithDetails(details)
	}
}
