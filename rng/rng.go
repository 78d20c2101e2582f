// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	ratomic "sync/atomic"

	"github.com/NVIDIA/osrand/cmn/nlog"
)

// A Generator owns exactly one committed source for its entire lifetime.
// Candidate sources are probed in a fixed per-platform order at construction
// time; the first one to probe successfully is committed, and no re-selection
// ever happens afterwards.

type (
	SourceKind int

	// Generator produces random bytes from a single committed OS source.
	// Generation methods are safe for concurrent use; Close is idempotent.
	Generator struct {
		src    source
		closed ratomic.Bool
	}

	source interface {
		kind() SourceKind
		name() string
		// read fills p entirely or returns an error; p is never empty
		read(p []byte) error
		// close releases OS resources; failures are logged, not returned
		close()
	}

	probe struct {
		name string
		open func() (source, error)
	}
)

const (
	SrcNone SourceKind = iota
	SrcCNG
	SrcCryptoAPI
	SrcRTL
	SrcSyscall
	SrcDevice
)

// interface guard
var _ io.Reader = (*Generator)(nil)

func (k SourceKind) String() string {
	switch k {
	case SrcCNG:
		return "cng"
	case SrcCryptoAPI:
		return "cryptoapi"
	case SrcRTL:
		return "rtl"
	case SrcSyscall:
		return "syscall"
	case SrcDevice:
		return "device"
	}
	return "none"
}

// New probes the platform's entropy sources in order of preference and
// returns a Generator committed to the first available one.
func New() (*Generator, error) {
	src, err := open()
	if err != nil {
		return nil, err
	}
	return &Generator{src: src}, nil
}

func open() (source, error) {
	if len(probes) == 0 {
		return nil, NewErrSourceUnavailable(runtime.GOOS, nil)
	}
	tried := make([]string, 0, len(probes))
	for i, p := range probes {
		src, err := p.open()
		if err == nil {
			nlog.Infof("using %s", src.name())
			return src, nil
		}
		tried = append(tried, p.name+": "+err.Error())
		if i < len(probes)-1 {
			nlog.Warningf("%s unavailable [%v] - falling back to %s", p.name, err, probes[i+1].name)
		}
	}
	return nil, NewErrSourceUnavailable(fmt.Sprintf(fmtErrTried, strings.Join(tried, "; ")), nil)
}

///////////////
// Generator //
///////////////

func (g *Generator) Source() SourceKind { return g.src.kind() }
func (g *Generator) SourceName() string { return g.src.name() }

func (g *Generator) UsesCNG() bool       { return g.src.kind() == SrcCNG }
func (g *Generator) UsesCryptoAPI() bool { return g.src.kind() == SrcCryptoAPI }
func (g *Generator) UsesRTL() bool       { return g.src.kind() == SrcRTL }
func (g *Generator) UsesSyscall() bool   { return g.src.kind() == SrcSyscall }
func (g *Generator) UsesDevice() bool    { return g.src.kind() == SrcDevice }

// GetBytes returns exactly n random bytes.
func (g *Generator) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errNegCount
	}
	p := make([]byte, n)
	if _, err := g.Read(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Read implements io.Reader with a stricter contract: it fills p entirely
// and returns len(p), or returns an error with n == 0.
func (g *Generator) Read(p []byte) (int, error) {
	if g.closed.Load() {
		return 0, NewErrSourceUnavailable(g.src.name(), errClosed)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := g.src.read(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close releases the committed source and all OS resources behind it.
// Callers must not generate concurrently with (or after) Close.
func (g *Generator) Close() {
	if !g.closed.CompareAndSwap(false, true) {
		return
	}
	g.src.close()
}
