// Package conf contains the constants that are used across packages for
// versions, prompts and output defaults.
package conf

import (
	"fmt"
	"time"
)

const (
	// NAME is the name of the application.
	NAME = "declcheck"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// TIMEFORMAT is the default strftime format used to stamp check results.
	TIMEFORMAT = "%H:%M:%S"
	// PROMPT is the repl prompt.
	PROMPT = "> "
)

// Version returns the application name and semantic version.
func Version() string {
	return fmt.Sprintf("%s %d.%d.%d", NAME, VERSIONMAJORN, VERSIONMINORN, VERSIONPATCHN)
}

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v Copyright (C) %v", Version(), time.Now().Year())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
