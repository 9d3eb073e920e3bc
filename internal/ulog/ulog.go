// Copyright 2024 The Godestruct Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ulog is a thin verbose/banner logging wrapper around gosl/utl,
// used only by cmd/godestruct and test fixtures. Library packages
// (mesh, voronoi, debris, material, fracture) stay silent — they never
// import this package — so embedding godestruct in another program never
// produces unsolicited console output (SPEC_FULL.md §2.2).
package ulog

import "github.com/cpmech/gosl/utl"

// Verbose gates the tick-by-tick trace lines emitted by Tick. Banner
// and error output are unaffected by this flag.
var Verbose = false

// Banner prints the startup banner in white, mirroring gofem's own
// startup message in cmd/godestruct's main.
func Banner(name, copyrightLine string) {
	utl.PfWhite("\n%s\n\n", name)
	utl.Pf("%s\n", copyrightLine)
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")
}

// Tick prints a single trace line when Verbose is set.
func Tick(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	utl.Pfgrey(format, args...)
}

// Error prints a red error line, regardless of Verbose.
func Error(format string, args ...interface{}) {
	utl.PfRed(format, args...)
}

// Warn prints a yellow warning line, regardless of Verbose.
func Warn(format string, args ...interface{}) {
	utl.Pfyel(format, args...)
}

// Info prints a plain informational line when Verbose is set.
func Info(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	utl.Pf(format, args...)
}
