// Package resource implements the client data-access layer: a [Resource]
// fetches one server payload for the signed-in user and exposes it as an
// immutable [State]; a [LiveList] keeps a keyed list in step with realtime
// change events.
package resource
