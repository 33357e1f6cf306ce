// Package server exposes plan execution over HTTP and WebSocket.
//
// # Endpoints
//
//   - POST /v1/join: body {"html": "...", "plan": {...}}, responds with a
//     plan.Report
//   - GET /v1/join/ws: WebSocket; every text message is a join request and
//     is answered with one response message
//   - GET /metrics: Prometheus metrics
//   - GET /healthz: liveness probe
//
// Every request parses its own document, so requests share nothing but
// the metrics collector and tracer.
//
// # Errors
//
// Failures are reported as {"error": {"code": ..., "category": ...,
// "message": ...}} with a status derived from the error category:
// request errors are 400 (413 when the body is too large), plan and
// document errors are 422 and anything else is 500.
//
// # Usage
//
//	cfg, _ := config.LoadOrDefault(".")
//	srv := server.New(cfg, server.WithLogger(cfg.Logger(os.Stderr)))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
