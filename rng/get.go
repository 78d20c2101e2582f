// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"sync"
	"unsafe"
)

var (
	defGen  *Generator
	defErr  error
	defOnce sync.Once
)

// Default returns the process-wide shared Generator, constructing it on
// first use. The shared instance is never closed.
func Default() (*Generator, error) {
	defOnce.Do(func() { defGen, defErr = New() })
	return defGen, defErr
}

// Bytes returns exactly n random bytes from the shared Generator.
func Bytes(n int) ([]byte, error) {
	g, err := Default()
	if err != nil {
		return nil, err
	}
	return g.GetBytes(n)
}

// Read fills p entirely from the shared Generator.
func Read(p []byte) (int, error) {
	g, err := Default()
	if err != nil {
		return 0, err
	}
	return g.Read(p)
}

// Get returns a uniformly random value of type T - the verbatim bit pattern
// delivered by g's committed source. T must be a fixed-size type with no
// pointers: integers, floats, arrays of such, and structs thereof.
func Get[T any](g *Generator) (v T, err error) {
	if size := unsafe.Sizeof(v); size != 0 {
		p := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
		_, err = g.Read(p)
	}
	return v, err
}
