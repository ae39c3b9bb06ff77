// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request correlation, request logging, CORS, panic
// recovery, body size limits, and the per-request transaction scope.
package middleware
