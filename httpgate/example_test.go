package httpgate_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/jonwraymond/healthops/health"
	"github.com/jonwraymond/healthops/httpgate"
)

func ExampleNew() {
	reg, _ := health.NewRegistryBuilder().
		AddFunc("database", func(ctx context.Context) health.Result {
			return health.Unhealthy("down", errors.New("connection refused"))
		}).
		Build()

	gate := httpgate.New(health.NewEvaluator(reg))

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	fmt.Println("code:", rec.Code)
	fmt.Print("body: ", rec.Body.String())
	// Output:
	// code: 503
	// body: unhealthy
}

func ExampleGate_Middleware() {
	reg, _ := health.NewRegistryBuilder().
		AddFunc("database", func(ctx context.Context) health.Result {
			return health.Healthy("connected")
		}).
		Build()

	gate := httpgate.New(health.NewEvaluator(reg), httpgate.Config{Path: "/healthz"})

	app := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "hello from the app")
	})
	handler := gate.Middleware(app)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	fmt.Print(rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	fmt.Print(rec.Body.String())
	// Output:
	// healthy
	// hello from the app
}
