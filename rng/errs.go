// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	fmtErrStatus = "%s status %#x"
	fmtErrTried  = "tried %s"
)

var (
	errClosed   = errors.New("use after close")
	errNegCount = errors.New("negative byte count")
)

type (
	// ErrSourceUnavailable is the failure to obtain, or to keep using, a
	// platform entropy source: all candidates rejected at construction time,
	// an OS API call reporting non-success, or use of a closed Generator.
	ErrSourceUnavailable struct {
		err error
		src string
	}
	// ErrDeviceRead is an I/O failure on the random device, including
	// premature end-of-file.
	ErrDeviceRead struct {
		err  error
		path string
	}
)

//////////////////////////
// ErrSourceUnavailable //
//////////////////////////

func NewErrSourceUnavailable(src string, err error) *ErrSourceUnavailable {
	return &ErrSourceUnavailable{src: src, err: err}
}

func (e *ErrSourceUnavailable) Error() string {
	if e.err == nil {
		return "entropy source unavailable: " + e.src
	}
	return fmt.Sprintf("entropy source unavailable: %s: %v", e.src, e.err)
}

func (e *ErrSourceUnavailable) Unwrap() error { return e.err }

func IsErrSourceUnavailable(err error) bool {
	if _, ok := err.(*ErrSourceUnavailable); ok {
		return true
	}
	target := (*ErrSourceUnavailable)(nil)
	return errors.As(err, &target)
}

///////////////////
// ErrDeviceRead //
///////////////////

func NewErrDeviceRead(path string, err error) *ErrDeviceRead {
	return &ErrDeviceRead{path: path, err: err}
}

func (e *ErrDeviceRead) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.path, e.err)
}

func (e *ErrDeviceRead) Unwrap() error { return e.err }

func IsErrDeviceRead(err error) bool {
	if _, ok := err.(*ErrDeviceRead); ok {
		return true
	}
	target := (*ErrDeviceRead)(nil)
	return errors.As(err, &target)
}
