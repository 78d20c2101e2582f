// Package cos provides common low-level types and utilities for osrand and its tools
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"errors"
	"io"
	"os"

	"github.com/NVIDIA/osrand/cmn/debug"
)

// POSIX permissions
const PermRWR os.FileMode = 0o640

// including "unexpected EOF" to accommodate early termination of the
// other side (prior to delivering the requested number of bytes)
func IsEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

func Close(closer io.Closer) {
	err := closer.Close()
	debug.AssertNoErr(err)
}

func FlushClose(file *os.File) (err error) {
	err = file.Sync()
	debug.AssertNoErr(err)
	err = file.Close()
	debug.AssertNoErr(err)
	return
}
