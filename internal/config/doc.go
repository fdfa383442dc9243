// Package config provides configuration loading, merging, and validation
// facilities for the Veepo server and terminal client.
//
// Server configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for server/runtime
// configuration and [GetClientConfig] for client-specific configuration.
package config
