//go:build linux || freebsd || darwin

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

// direct call first, random device second
var probes = []probe{
	{name: directName, open: newDirectSource},
	{name: devURandom, open: openURandom},
}
