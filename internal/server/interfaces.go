package server

import "errors"

var errNoServersAreCreated = errors.New("no servers are created")

// Server runs the Veepo API listener and, when configured, the prototype
// listener. RunServer blocks until SIGINT, SIGTERM or SIGQUIT; Shutdown
// drains every listener in parallel.
type Server interface {
	RunServer()
	Shutdown()
}
