//go:build unix && !linux && !freebsd && !darwin

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

// no direct entropy call wired on this platform; the random device is
// the sole candidate
var probes = []probe{
	{name: devURandom, open: openURandom},
}
