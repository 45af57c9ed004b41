// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

//go:build !debug

package xdebug

// Enabled is false in release builds.
const Enabled = false

// Assert is a no-op in release builds.
func Assert(bool, string, ...any) {}

// Log is a no-op in release builds.
func Log(string, ...any) {}
