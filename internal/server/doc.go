// Package server wires and runs the application's HTTP servers.
//
// It runs the API server and the prototype service, listens for termination
// signals and shuts every started server down gracefully.
package server
