// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package clipin provides the version and commit information for the clipin application.
package clipin

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// VersionString returns the version and commit in the form printed by --version.
func VersionString() string {
	return Version + " (" + Commit + ")"
}
