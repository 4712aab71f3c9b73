package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_TextRoundTrip(t *testing.T) {
	for _, status := range []Status{StatusHealthy, StatusDegraded, StatusUnhealthy} {
		text, err := status.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}

		var got Status
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != status {
			t.Errorf("round trip = %v, want %v", got, status)
		}
	}
}

func TestStatus_UnmarshalText_Unknown(t *testing.T) {
	var s Status
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText should fail for unknown status")
	}
}

func TestMaxStatus(t *testing.T) {
	tests := []struct {
		a, b, want Status
	}{
		{StatusHealthy, StatusHealthy, StatusHealthy},
		{StatusHealthy, StatusDegraded, StatusDegraded},
		{StatusDegraded, StatusHealthy, StatusDegraded},
		{StatusDegraded, StatusUnhealthy, StatusUnhealthy},
		{StatusUnhealthy, StatusHealthy, StatusUnhealthy},
	}

	for _, tt := range tests {
		if got := MaxStatus(tt.a, tt.b); got != tt.want {
			t.Errorf("MaxStatus(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHealthy(t *testing.T) {
	result := Healthy("all good")

	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want StatusHealthy", result.Status)
	}
	if result.Message != "all good" {
		t.Errorf("Message = %v, want 'all good'", result.Message)
	}
	if result.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestDegraded(t *testing.T) {
	result := Degraded("slow responses")

	if result.Status != StatusDegraded {
		t.Errorf("Status = %v, want StatusDegraded", result.Status)
	}
}

func TestUnhealthy(t *testing.T) {
	cause := errors.New("connection refused")
	result := Unhealthy("cannot connect", cause)

	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want StatusUnhealthy", result.Status)
	}
	if !errors.Is(result.Err, cause) {
		t.Errorf("Err = %v, want %v", result.Err, cause)
	}
}

func TestResult_WithDetails(t *testing.T) {
	result := Healthy("ok").WithDetails(map[string]any{"latency_ms": 12})

	if result.Details["latency_ms"] != 12 {
		t.Errorf("Details[latency_ms] = %v, want 12", result.Details["latency_ms"])
	}
}

func TestCheckerFunc(t *testing.T) {
	called := false
	checker := CheckerFunc(func(ctx context.Context) Result {
		called = true
		return Healthy("ok")
	})

	result := checker.Check(context.Background())
	if !called {
		t.Error("CheckerFunc should invoke the wrapped function")
	}
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want StatusHealthy", result.Status)
	}
}
