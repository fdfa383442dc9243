// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/veepo/models"
)

func renderBuildInfoWindow(info models.BuildInfo, lang models.Language) string {
	var b strings.Builder

	b.WriteString("Veepo\n")
	b.WriteString(tr(lang, "build.version") + ": ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString(tr(lang, "build.date") + ": ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString(tr(lang, "build.commit") + ": ")
	b.WriteString(valueOrNA(info.ShortCommit()))

	return renderPage(lang, tr(lang, "build.title"), b.String(), tr(lang, "keys.back"))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
