// Package cos provides common low-level types and utilities for osrand and its tools
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"fmt"
	"os"
)

//////////////////////////
// Abnormal Termination //
//////////////////////////

// Exitf writes formatted message to STDERR and exits with non-zero status code.
func Exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
