// Package controller contains the HTTP middlewares and helper handlers the
// API server composes around its routes.
//
// Middlewares:
//   - WithCORS: sets CORS headers scoped to the methods the API serves and
//     answers OPTIONS preflight requests.
//   - WithLogger: attaches a request-scoped logger and request ID to the
//     context and emits a structured access log line per request.
//
// Helpers:
//   - PprofMux: returns a ServeMux exposing net/http/pprof handlers and the
//     named runtime profiles.
package controller
