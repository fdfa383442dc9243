// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/client"
	"github.com/MKhiriev/veepo/models"
)

// userMessage turns an error from the runtime into the line shown in the
// status bar or under a form. Errors without a known meaning are shown as is.
func userMessage(err error, lang models.Language) string {
	var netErr net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrRequestFailed),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return tr(lang, "status.server_offline")
	case errors.Is(err, adapter.ErrUnauthorized):
		return tr(lang, "status.unauthorized")
	case errors.Is(err, adapter.ErrConflict):
		return tr(lang, "status.conflict")
	case errors.Is(err, client.ErrNotSignedIn):
		return tr(lang, "status.signed_out")
	case errors.Is(err, client.ErrContactSales):
		return tr(lang, "billing.contact")
	case errors.Is(err, client.ErrUnknownState):
		return tr(lang, "profile.unknown_state")
	case errors.Is(err, client.ErrUnknownCity):
		return tr(lang, "profile.unknown_city")
	case errors.Is(err, client.ErrUnknownCNAE):
		return tr(lang, "profile.unknown_cnae")
	}
	return err.Error()
}
