// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/notes-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application: notes-keeper\nVersion: %s\nDate: %s\nCommit: %s",
		info.Version(), info.Date(), info.Commit())

	return renderPage("ABOUT", body, "esc: back")
}
