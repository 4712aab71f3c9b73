package checks

import (
	"context"
	"fmt"
	"net"

	"github.com/jonwraymond/healthops/health"
)

// TCP verifies that a TCP endpoint accepts connections.
type TCP struct {
	address string
	dialer  net.Dialer
}

// NewTCP creates a checker that dials the given "host:port" address.
// The dial is bounded by the Check context, so a per-check timeout on the
// descriptor bounds the connection attempt.
func NewTCP(address string) *TCP {
	return &TCP{address: address}
}

// Check implements health.Checker.
func (t *TCP) Check(ctx context.Context) health.Result {
	if t.address == "" {
		return health.Unhealthy("address not configured", fmt.Errorf("empty address"))
	}

	conn, err := t.dialer.DialContext(ctx, "tcp", t.address)
	if err != nil {
		return health.Unhealthy(
			fmt.Sprintf("cannot connect to %s", t.address),
			err,
		).WithDetails(map[string]any{"address": t.address})
	}
	_ = conn.Close()

	return health.Healthy(fmt.Sprintf("connected to %s", t.address))
}
