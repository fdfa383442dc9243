// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the Veepo
// services: credentials, QR codes, campaigns, public feedback submissions,
// provider profiles, dashboard ranges and checkout requests.
//
// Validate takes the payload and the names of the fields to check, so the
// same model can be validated differently by create and update operations.
package validators

import "context"

// Validator reports the first rule obj breaks among the given fields.
// Unknown payload types yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
