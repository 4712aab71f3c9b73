package checks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonwraymond/healthops/health"
)

// SQLConfig configures the SQL database checker.
type SQLConfig struct {
	// Query, when set, is executed after the ping and must return at least
	// one row. Useful for verifying more than raw connectivity, e.g.
	// "SELECT 1" through a connection pooler.
	Query string
}

// SQL verifies a database/sql connection with PingContext and an optional
// probe query.
type SQL struct {
	db     *sql.DB
	config SQLConfig
}

// NewSQL creates a checker over an existing database handle. The checker does
// not own the handle and never closes it.
func NewSQL(db *sql.DB, config ...SQLConfig) *SQL {
	cfg := SQLConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	return &SQL{db: db, config: cfg}
}

// Check implements health.Checker.
func (s *SQL) Check(ctx context.Context) health.Result {
	if err := s.db.PingContext(ctx); err != nil {
		return health.Unhealthy("database ping failed", err)
	}

	if s.config.Query != "" {
		rows, err := s.db.QueryContext(ctx, s.config.Query)
		if err != nil {
			return health.Unhealthy("probe query failed", err).
				WithDetails(map[string]any{"query": s.config.Query})
		}
		defer rows.Close()

		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return health.Unhealthy("probe query failed", err).
					WithDetails(map[string]any{"query": s.config.Query})
			}
			return health.Degraded(fmt.Sprintf("probe query %q returned no rows", s.config.Query))
		}
	}

	stats := s.db.Stats()
	return health.Healthy("database reachable").WithDetails(map[string]any{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
	})
}
