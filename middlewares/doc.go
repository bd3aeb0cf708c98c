// Package middlewares provides standard net/http middleware used by the
// preview server.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing and debugging.
// It checks incoming headers for existing IDs or generates new ones using ULID.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//
// Use RequestIDExtractor() with logger.New for automatic request_id in all
// log entries written with a request context:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover catches panics, logs them with the request ID and a stack trace,
// and responds with 500:
//
//	r.Use(middlewares.Recover(
//	    middlewares.WithRecoverLogger(log),
//	))
package middlewares
