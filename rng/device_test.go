//go:build unix

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/NVIDIA/osrand/tools/tassert"
)

func writeFakeDevice(t *testing.T, size int) (string, []byte) {
	t.Helper()
	pattern := make([]byte, size)
	for i := range pattern {
		pattern[i] = byte(i * 31)
	}
	path := filepath.Join(t.TempDir(), "urandom")
	err := os.WriteFile(path, pattern, 0o600)
	tassert.CheckFatal(t, err)
	return path, pattern
}

func TestProbeOrder(t *testing.T) {
	tassert.Fatalf(t, len(probes) > 0, "no probe chain for %s", runtime.GOOS)
	last := probes[len(probes)-1]
	tassert.Errorf(t, last.name == devURandom, "the device must be the last resort, got %q", last.name)
}

func TestDeviceChunkedRead(t *testing.T) {
	path, pattern := writeFakeDevice(t, 4096)
	src, err := newDeviceSource(&device{path: path})
	tassert.CheckFatal(t, err)
	defer src.close()

	// spans two full chunks plus a partial one
	n := 2*deviceChunk + 44
	p := make([]byte, n)
	err = src.read(p)
	tassert.CheckFatal(t, err)
	tassert.Fatal(t, bytes.Equal(p, pattern[:n]), "chunked read does not preserve device byte order")
}

func TestDevicePrematureEOF(t *testing.T) {
	path, _ := writeFakeDevice(t, 50)
	src, err := newDeviceSource(&device{path: path})
	tassert.CheckFatal(t, err)
	defer src.close()

	p := make([]byte, 300)
	err = src.read(p)
	tassert.Fatalf(t, IsErrDeviceRead(err), "expected ErrDeviceRead, got %v", err)
	tassert.Errorf(t, errors.Is(err, io.ErrUnexpectedEOF), "expected premature EOF cause, got %v", err)
}

func TestDeviceOpenFailure(t *testing.T) {
	dev := &device{path: filepath.Join(t.TempDir(), "definitely-missing")}
	_, err := newDeviceSource(dev)
	tassert.Fatal(t, err != nil, "expected open failure")
	tassert.Fatalf(t, dev.refs == 0, "failed open must not leave a reference, refs=%d", dev.refs)
}

func TestGeneratorOverFakeDevice(t *testing.T) {
	path, pattern := writeFakeDevice(t, 8192)
	src, err := newDeviceSource(&device{path: path})
	tassert.CheckFatal(t, err)
	g := &Generator{src: src}
	defer g.Close()

	tassert.Fatal(t, g.UsesDevice(), "expected a device-committed generator")
	tassert.Fatalf(t, g.SourceName() == path, "expected source name %q, got %q", path, g.SourceName())

	p, err := g.GetBytes(1000)
	tassert.CheckFatal(t, err)
	tassert.Fatal(t, bytes.Equal(p, pattern[:1000]), "generator draw diverges from device content")

	// consecutive draws continue where the previous one left off
	q, err := g.GetBytes(500)
	tassert.CheckFatal(t, err)
	tassert.Fatal(t, bytes.Equal(q, pattern[1000:1500]), "second draw does not continue from the first")
}

// Get[T] hands back the raw bit pattern of sizeof(T) generated bytes,
// verbatim - verified against a device with known content.
func TestGetReinterpretsBytes(t *testing.T) {
	path, pattern := writeFakeDevice(t, 64)
	src, err := newDeviceSource(&device{path: path})
	tassert.CheckFatal(t, err)
	g := &Generator{src: src}
	defer g.Close()

	u, err := Get[uint64](g)
	tassert.CheckFatal(t, err)
	expected := binary.NativeEndian.Uint64(pattern[:8])
	tassert.Fatalf(t, u == expected, "Get[uint64] = %#x, expected bit pattern %#x", u, expected)

	arr, err := Get[[16]byte](g)
	tassert.CheckFatal(t, err)
	tassert.Fatal(t, bytes.Equal(arr[:], pattern[8:24]), "Get[[16]byte] diverges from the device bytes")
}
