package controller

import "net/http"

// corsMethods lists the methods the API actually serves. OPTIONS is included
// for preflight requests.
const corsMethods = "GET, POST, DELETE, OPTIONS"

// corsHeaders lists the request headers clients are allowed to send.
const corsHeaders = "Authorization, Content-Type, Accept, Origin, Cache-Control, X-Request-Id"

// WithCORS returns a middleware that sets CORS headers on every response and
// short-circuits OPTIONS preflight requests with 204 No Content.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
		w.Header().Set("Access-Control-Allow-Methods", corsMethods)

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
