// Copyright (c) 2025 the octomap authors
// SPDX-License-Identifier: MIT

package octomap

import "errors"

var (
	// ErrGrowthLimitExceeded is returned by AddPoint when the root had to
	// grow more than 20 times to contain the point without doing so. The
	// root is left expanded by whatever growth attempts already ran — a
	// documented, accepted partial side effect of the failed insertion.
	ErrGrowthLimitExceeded = errors.New("octomap: growth limit exceeded")

	// ErrCorruptBitstream is returned by FromBitstream when the stream
	// ends mid-descriptor. The partially-built tree is discarded.
	ErrCorruptBitstream = errors.New("octomap: corrupt bitstream")

	// ErrAllocatorExhausted is returned when the node or child-group
	// handle space is exhausted.
	ErrAllocatorExhausted = errors.New("octomap: allocator exhausted")
)
