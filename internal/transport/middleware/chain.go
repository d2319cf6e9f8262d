package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware. Application
// order follows argument order: Chain(mw1, mw2)(h) produces mw1(mw2(h)), so
// mw1 runs outermost. Nil entries are skipped, which lets callers build
// chains with optional members without filtering first.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
