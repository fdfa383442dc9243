// Package http serves the Veepo REST API and the realtime event streams.
//
// Routes are mounted on chi. Every request gets a trace id and an access log
// line; authenticated routes resolve the bearer token to a user before the
// handler calls into the service layer. Responses are gzip-compressed when
// the client asks, except for the SSE streams under /api/realtime.
package http
