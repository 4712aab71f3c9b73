// Package checks provides ready-made health checkers for common dependencies.
//
// Every checker in this package implements health.Checker and plugs into a
// registry descriptor:
//
//	reg, err := health.NewRegistryBuilder().
//	    Add("memory", checks.NewMemory(checks.MemoryConfig{})).
//	    Add("redis", checks.NewRedis(redisClient), health.WithTags("ready")).
//	    Add("postgres", checks.NewSQL(db), health.WithTimeout(2*time.Second)).
//	    Build()
//
// Checkers report Degraded for soft conditions (high but tolerable memory
// pressure, unexpected-but-2xx HTTP statuses) and Unhealthy for hard failures
// (connection refused, ping error, missing file).
package checks
