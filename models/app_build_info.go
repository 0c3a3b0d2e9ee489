// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const unknownBuildValue = "N/A"

// AppBuildInfo is the version stamp linked into a binary with -ldflags -X.
// Blank parts read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) Version() string { return orUnknown(a.version) }
func (a AppBuildInfo) Date() string    { return orUnknown(a.date) }
func (a AppBuildInfo) Commit() string  { return orUnknown(a.commit) }

// String renders the three lines the binaries print on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.Version(), a.Date(), a.Commit())
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
