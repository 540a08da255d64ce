// Package transport wraps every outbound HTTP request in a middleware chain
// so cross-cutting authorization and error-translation behavior is applied
// uniformly, without each call site repeating it. Stages only add side
// effects: no stage ever swallows an error, and a successful response passes
// through untouched.
package transport

import (
	"context"
	"net/http"
)

// Handler executes one HTTP request. The base handler is an *http.Client;
// middleware stages wrap it.
type Handler func(ctx context.Context, req *http.Request) (*http.Response, error)

// Middleware wraps a Handler with behavior around the request or its outcome.
type Middleware func(next Handler) Handler

// Chain composes middleware around h. The first middleware is outermost: it
// sees the request first and the outcome last.
func Chain(h Handler, mw ...Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// HTTPHandler adapts an *http.Client to the Handler type.
func HTTPHandler(c *http.Client) Handler {
	return func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return c.Do(req.WithContext(ctx))
	}
}
