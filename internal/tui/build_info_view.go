// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

// BuildInfo is the linker-injected version data shown by the "v" window.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func renderBuildInfoWindow(info BuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: Sterling client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.Commit))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
