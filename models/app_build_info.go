// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata injected by linker flags and
// printed by the client "version" command.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(buildVersion),
		Date:    orNA(buildDate),
		Commit:  orNA(buildCommit),
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
