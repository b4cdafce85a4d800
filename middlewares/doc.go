// Package middlewares provides net/http middleware for the dashboard
// bootstrap server.
//
// # Request ID
//
// RequestID reuses an upstream request ID header or generates a UUIDv7, echoes
// it in the response, and stores it with [apiclient.WithRequestID] so that log
// lines and any backend call made while serving the request carry the same ID.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//
// Pair it with [apiclient.RequestIDExtractor] on the logger to get
// "request_id" on every entry.
//
// # Recover
//
// Recover turns a handler panic into a 500 response and an error log entry
// with the stack trace.
//
//	r.Use(middlewares.Recover(log))
package middlewares
