// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It keeps the signed-in session, exposes each dashboard view as resources
// and live lists fed by the API and the realtime stream, caches the last
// known dashboard in SQLite and wires all of it to the terminal UI.
package client
