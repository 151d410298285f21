// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs the chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler and can be composed
// using the Chain helper or passed to the router one by one.
package middleware

import "net/http"

// Chain composes middleware so that the first argument is outermost:
//
//	Chain(Recovery, RequestID, Logging)(handler)
//
// is equivalent to
//
//	Recovery(RequestID(Logging(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
