// Package httpgate exposes a health evaluator over HTTP.
//
// The gate is the boundary between the transport and the evaluation engine:
// it decides which requests reach the evaluator (path and optional port
// matching), derives the evaluation's cancellation from the request context,
// maps the report's overall status to an HTTP status code, and writes the
// response body.
//
// # Basic Usage
//
//	gate := httpgate.New(ev, httpgate.Config{Path: "/health"})
//	http.Handle("/health", gate)
//
// or as middleware intercepting matching requests in front of an application
// handler:
//
//	http.ListenAndServe(":8080", gate.Middleware(appHandler))
//
// # Status Code Mapping
//
// By default Healthy and Degraded map to 200 and Unhealthy to 503. A custom
// mapping must cover all three statuses: a report status missing from the
// table is a configuration error surfaced as a 500 response, never silently
// defaulted.
//
// # Caching
//
// Health responses describe a moment in time, so unless Config.AllowCaching
// is set the gate suppresses caching with Cache-Control, Pragma and Expires
// headers.
package httpgate
