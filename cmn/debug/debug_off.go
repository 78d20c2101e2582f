//go:build !debug

// Package debug provides assertions and debug utilities for all osrand packages
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

func Enabled() bool { return false }

func Infof(string, ...any) {}

func Assert(bool, ...any)          {}
func AssertMsg(bool, string)       {}
func Assertf(bool, string, ...any) {}
func AssertNoErr(error)            {}
func AssertFunc(func() bool, ...any) {}
