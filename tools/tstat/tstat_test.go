// Package tstat provides basic statistical helpers for randomness tests
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tstat_test

import (
	"bytes"
	"testing"

	"github.com/NVIDIA/osrand/tools/tassert"
	"github.com/NVIDIA/osrand/tools/tstat"
)

func TestKnownDistributions(t *testing.T) {
	uniform := make([]byte, 256*16)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	constant := bytes.Repeat([]byte{7}, 1024)

	chi2 := tstat.ChiSquareBytes(uniform)
	tassert.Errorf(t, chi2 == 0, "perfectly uniform input: chi-square %f, expected 0", chi2)
	chi2 = tstat.ChiSquareBytes(constant)
	tassert.Errorf(t, chi2 > 100_000, "constant input: chi-square %f suspiciously low", chi2)

	h := tstat.EntropyBits(uniform)
	tassert.Errorf(t, h == 8, "perfectly uniform input: entropy %f, expected 8", h)
	h = tstat.EntropyBits(constant)
	tassert.Errorf(t, h == 0, "constant input: entropy %f, expected 0", h)
}

func TestMeanZScore(t *testing.T) {
	mean := tstat.Mean([]int{1, 2, 3})
	tassert.Errorf(t, mean == 2, "mean %f, expected 2", mean)
	tassert.Errorf(t, tstat.Mean([]float64(nil)) == 0, "mean of empty input must be 0")

	z := tstat.ZScore(10, 4, 2)
	tassert.Errorf(t, z == 3, "z-score %f, expected 3", z)
}
