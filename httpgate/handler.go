package httpgate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonwraymond/healthops/health"
)

// Config configures the health gate.
type Config struct {
	// Path is the request path served by the gate.
	// Default: "/health"
	Path string

	// Port restricts the gate to requests arriving on this port.
	// Zero matches any port.
	Port int

	// StatusCodes maps each overall status to an HTTP status code.
	// Nil selects the default mapping (Healthy and Degraded 200,
	// Unhealthy 503). A non-nil table missing a status is a configuration
	// error answered with 500 at request time.
	StatusCodes map[health.Status]int

	// AllowCaching leaves response caching to intermediaries. When false,
	// the gate sets Cache-Control, Pragma and Expires headers suppressing it.
	AllowCaching bool

	// Timeout bounds each evaluation, composed with the request context.
	// Zero means the request context alone bounds it.
	Timeout time.Duration

	// Detailed selects the JSON per-check body instead of the plain-text
	// overall status.
	Detailed bool

	// TagParam is the query parameter carrying tag filters, e.g.
	// GET /health?tags=ready. Empty disables query filtering.
	TagParam string
}

// DefaultStatusCodes is the default overall-status to HTTP code mapping.
func DefaultStatusCodes() map[health.Status]int {
	return map[health.Status]int{
		health.StatusHealthy:   http.StatusOK,
		health.StatusDegraded:  http.StatusOK,
		health.StatusUnhealthy: http.StatusServiceUnavailable,
	}
}

// Gate serves health evaluations over HTTP.
type Gate struct {
	evaluator *health.Evaluator
	config    Config
}

// New creates a gate over the given evaluator, applying config defaults.
func New(evaluator *health.Evaluator, config ...Config) *Gate {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Path == "" {
		cfg.Path = "/health"
	}
	if cfg.StatusCodes == nil {
		cfg.StatusCodes = DefaultStatusCodes()
	}
	return &Gate{evaluator: evaluator, config: cfg}
}

// ServeHTTP implements http.Handler.
func (g *Gate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	var filters []health.Filter
	if g.config.TagParam != "" {
		if tags := r.URL.Query()[g.config.TagParam]; len(tags) > 0 {
			filters = append(filters, health.ByTags(tags...))
		}
	}

	report, err := g.evaluator.Evaluate(ctx, filters...)
	if err != nil {
		g.writeError(w, err)
		return
	}

	code, ok := g.config.StatusCodes[report.Status]
	if !ok {
		g.writeError(w, fmt.Errorf("%w for status %q", ErrStatusUnmapped, report.Status))
		return
	}

	g.setCacheHeaders(w)
	if g.config.Detailed {
		writeDetailed(w, code, report)
	} else {
		writePlain(w, code, report)
	}
}

// Middleware wraps next, intercepting requests that match the gate's path and
// port. Everything else passes through untouched.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.matches(r) {
			next.ServeHTTP(w, r)
			return
		}
		g.ServeHTTP(w, r)
	})
}

// matches reports whether the request targets the gate.
func (g *Gate) matches(r *http.Request) bool {
	if r.URL.Path != g.config.Path {
		return false
	}
	if g.config.Port == 0 {
		return true
	}
	_, portStr, err := net.SplitHostPort(r.Host)
	if err != nil {
		return false
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return false
	}
	return port == g.config.Port
}

// setCacheHeaders suppresses response caching unless explicitly allowed.
func (g *Gate) setCacheHeaders(w http.ResponseWriter) {
	if g.config.AllowCaching {
		return
	}
	h := w.Header()
	h.Set("Cache-Control", "no-store, no-cache")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}

// writeError answers exceptional evaluation outcomes. A canceled evaluation
// is "no answer available", not an unhealthy report; a configuration error
// is a setup defect the operator must see.
func (g *Gate) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, health.ErrCanceled) {
		http.Error(w, "health evaluation canceled", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// writePlain writes the overall status name as text.
func writePlain(w http.ResponseWriter, code int, report *health.Report) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = fmt.Fprintln(w, report.Status.String())
}

// reportBody is the JSON shape of a detailed health response.
type reportBody struct {
	Status    string               `json:"status"`
	Duration  string               `json:"duration"`
	Timestamp string               `json:"timestamp"`
	Checks    map[string]checkBody `json:"checks,omitempty"`
}

type checkBody struct {
	Status   string         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// writeDetailed writes the full per-check report as JSON.
func writeDetailed(w http.ResponseWriter, code int, report *health.Report) {
	body := reportBody{
		Status:    report.Status.String(),
		Duration:  report.Duration.String(),
		Timestamp: report.Timestamp.UTC().Format(time.RFC3339),
		Checks:    make(map[string]checkBody, len(report.Checks)),
	}
	for name, res := range report.Checks {
		check := checkBody{
			Status:   res.Status.String(),
			Message:  res.Message,
			Duration: res.Duration.String(),
			Details:  res.Details,
		}
		if res.Err != nil {
			check.Error = res.Err.Error()
		}
		body.Checks[name] = check
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
