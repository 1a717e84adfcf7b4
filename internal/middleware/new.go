package middleware

import (
	"roi-srv/pkg/log"
)

// Middleware bundles the cross-cutting request middlewares.
type Middleware struct {
	l log.Logger
}

// New creates a Middleware.
func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
