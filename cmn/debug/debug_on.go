//go:build debug

// Package debug provides assertions and debug utilities for all osrand packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"
	"os"
)

func Enabled() bool { return true }

func Infof(f string, a ...any) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+f+"\n", a...)
}

func Assert(cond bool, a ...any) {
	if !cond {
		if len(a) > 0 {
			panic("DEBUG PANIC: " + fmt.Sprint(a...))
		}
		panic("DEBUG PANIC")
	}
}

func AssertMsg(cond bool, msg string) {
	if !cond {
		panic("DEBUG PANIC: " + msg)
	}
}

func Assertf(cond bool, f string, a ...any) { AssertMsg(cond, fmt.Sprintf(f, a...)) }

func AssertNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

func AssertFunc(f func() bool, a ...any) { Assert(f(), a...) }
