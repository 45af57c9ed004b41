// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

//go:build debug

// Package xdebug gates programmer-error invariant checks behind the
// "debug" build tag, the same split flier-goutil's internal/debug package
// uses: release builds pay nothing for checks that should never fire.
package xdebug

import (
	"fmt"
	"os"
)

// Enabled is true when built with -tags debug.
const Enabled = true

// Assert panics with a formatted message if cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic("octomap: assertion failed: " + fmt.Sprintf(format, args...))
	}
}

// Log writes a debug line to stderr.
func Log(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
