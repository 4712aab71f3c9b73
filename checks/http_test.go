package checks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/healthops/health"
)

func TestHTTP_ExpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checker := NewHTTP(HTTPConfig{URL: srv.URL})
	result := checker.Check(context.Background())

	if result.Status != health.StatusHealthy {
		t.Errorf("Status = %v, want StatusHealthy (message: %s)", result.Status, result.Message)
	}
	if result.Details["status_code"] != http.StatusOK {
		t.Errorf("Details[status_code] = %v, want 200", result.Details["status_code"])
	}
}

func TestHTTP_UnexpectedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	checker := NewHTTP(HTTPConfig{URL: srv.URL, ExpectStatus: http.StatusOK})
	result := checker.Check(context.Background())

	if result.Status != health.StatusDegraded {
		t.Errorf("Status = %v, want StatusDegraded", result.Status)
	}
}

func TestHTTP_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	checker := NewHTTP(HTTPConfig{URL: srv.URL})
	result := checker.Check(context.Background())

	if result.Status != health.StatusUnhealthy {
		t.Errorf("Status = %v, want StatusUnhealthy", result.Status)
	}
}

func TestHTTP_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	checker := NewHTTP(HTTPConfig{URL: url})
	result := checker.Check(context.Background())

	if result.Status != health.StatusUnhealthy {
		t.Errorf("Status = %v, want StatusUnhealthy", result.Status)
	}
	if result.Err == nil {
		t.Error("Err should carry the transport failure")
	}
}
