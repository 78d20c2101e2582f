// Package cos provides common low-level types and utilities for osrand and its tools
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/NVIDIA/osrand/cmn/cos"
	"github.com/NVIDIA/osrand/tools/tassert"
)

func TestToSizeIEC(t *testing.T) {
	tests := map[int64]string{
		0:            "0B",
		512:          "512B",
		cos.KiB:      "1KiB",
		42 * cos.KiB: "42KiB",
		cos.MiB:      "1MiB",
		cos.GiB:      "1GiB",
		cos.TiB:      "1TiB",
	}
	for size, expected := range tests {
		got := cos.ToSizeIEC(size, 0)
		tassert.Errorf(t, got == expected, "ToSizeIEC(%d) = %q, expected %q", size, got, expected)
	}
	got := cos.ToSizeIEC(cos.MiB+512*cos.KiB, 2)
	tassert.Errorf(t, got == "1.50MiB", "ToSizeIEC(1.5MiB) = %q", got)
}

func TestIsEOF(t *testing.T) {
	tassert.Error(t, cos.IsEOF(io.EOF), "io.EOF not recognized")
	tassert.Error(t, cos.IsEOF(io.ErrUnexpectedEOF), "io.ErrUnexpectedEOF not recognized")
	tassert.Error(t, cos.IsEOF(fmt.Errorf("wrapped: %w", io.EOF)), "wrapped EOF not recognized")
	tassert.Error(t, !cos.IsEOF(io.ErrShortWrite), "false positive on unrelated error")
	tassert.Error(t, !cos.IsEOF(nil), "false positive on nil")
}
