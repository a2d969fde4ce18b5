package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns an http.ServeMux exposing the net/http/pprof handlers plus
// the named runtime profiles. Mount it under a debug path in the main server;
// the pprof index handler resolves sub-paths itself.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	for _, profile := range []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"} {
		mux.Handle("/"+profile, pprof.Handler(profile))
	}

	return mux
}
