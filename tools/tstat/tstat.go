// Package tstat provides basic statistical helpers for randomness tests
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tstat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mean returns the arithmetic mean of xs.
func Mean[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// ZScore returns how many standard deviations observed lies from expected.
func ZScore[T constraints.Integer | constraints.Float](observed T, expected, sigma float64) float64 {
	return (float64(observed) - expected) / sigma
}

// ChiSquareBytes returns the chi-square statistic of the byte-value
// distribution in data against the uniform expectation; for uniform input
// the statistic concentrates around 255 (the degrees of freedom).
func ChiSquareBytes(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	expected := float64(len(data)) / 256
	var chi2 float64
	for _, count := range counts {
		diff := float64(count) - expected
		chi2 += diff * diff / expected
	}
	return chi2
}

// EntropyBits returns the Shannon entropy of the byte-value distribution,
// in bits per byte (8.0 being the ideal for uniform random data).
func EntropyBits(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	var h float64
	for _, count := range counts {
		if count > 0 {
			p := float64(count) / float64(len(data))
			h -= p * math.Log2(p)
		}
	}
	return h
}
