//go:build darwin

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"golang.org/x/sys/unix"
)

const directName = "getentropy(2)"

// getentropy(2) rejects requests larger than 256 bytes outright
const directChunk = 256

type directSource struct{}

// interface guard
var _ source = (*directSource)(nil)

// Probe with a minimal one-byte request; ENOSYS means a libc that
// predates the call, in which case the device takes over.
func newDirectSource() (source, error) {
	var b [1]byte
	if err := unix.Getentropy(b[:]); err != nil {
		return nil, err
	}
	return &directSource{}, nil
}

func (*directSource) kind() SourceKind { return SrcSyscall }

func (*directSource) name() string { return directName }

func (*directSource) read(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), directChunk)
		if err := unix.Getentropy(p[:n]); err != nil {
			return NewErrSourceUnavailable(directName, err)
		}
		p = p[n:]
	}
	return nil
}

func (*directSource) close() {}
