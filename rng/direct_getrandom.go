//go:build linux || freebsd

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"golang.org/x/sys/unix"
)

const directName = "getrandom(2)"

// getrandom(2) delivers requests up to 256 bytes in full and without
// interruption; anything larger goes out in bounded sub-calls
const directChunk = 256

type directSource struct{}

// interface guard
var _ source = (*directSource)(nil)

// Probe with a minimal one-byte request. ENOSYS (pre-3.17 kernel) and
// EPERM (seccomp policy) are the expected rejections; any failure defers
// to the next candidate.
func newDirectSource() (source, error) {
	var b [1]byte
	if err := getrandom(b[:]); err != nil {
		return nil, err
	}
	return &directSource{}, nil
}

func (*directSource) kind() SourceKind { return SrcSyscall }

func (*directSource) name() string { return directName }

func (*directSource) read(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), directChunk)
		if err := getrandom(p[:n]); err != nil {
			return NewErrSourceUnavailable(directName, err)
		}
		p = p[n:]
	}
	return nil
}

func (*directSource) close() {}

func getrandom(p []byte) error {
	for {
		n, err := unix.Getrandom(p, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n >= len(p) {
			return nil
		}
		p = p[n:]
	}
}
