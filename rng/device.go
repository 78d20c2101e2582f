//go:build unix

// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"io"
	"os"
	"sync"

	"github.com/NVIDIA/osrand/cmn/cos"
	"github.com/NVIDIA/osrand/cmn/debug"
	"github.com/NVIDIA/osrand/cmn/nlog"
)

const devURandom = "/dev/urandom"

// each read(2) stays comfortably within what random devices
// deliver in a single call
const deviceChunk = 128

type (
	// device is a refcounted, process-wide shared random device: a single
	// open descriptor serves all generators committed to it; the last
	// release closes it.
	device struct {
		fh   *os.File
		path string
		refs int
		mu   sync.Mutex
	}
	deviceSource struct {
		dev *device
		fh  *os.File // pinned while this source holds its reference
	}
)

var urandom = &device{path: devURandom}

// interface guard
var _ source = (*deviceSource)(nil)

////////////
// device //
////////////

func (d *device) acquire() (*os.File, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		fh, err := os.Open(d.path)
		if err != nil {
			return nil, err
		}
		d.fh = fh
	}
	d.refs++
	return d.fh, nil
}

func (d *device) release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	debug.Assert(d.refs > 0)
	d.refs--
	if d.refs > 0 {
		return
	}
	fh := d.fh
	d.fh = nil
	if err := fh.Close(); err != nil {
		nlog.Errorf("failed to close %s: %v", d.path, err)
	}
}

//////////////////
// deviceSource //
//////////////////

func openURandom() (source, error) {
	return newDeviceSource(urandom)
}

func newDeviceSource(dev *device) (source, error) {
	fh, err := dev.acquire()
	if err != nil {
		return nil, err
	}
	return &deviceSource{dev: dev, fh: fh}, nil
}

func (*deviceSource) kind() SourceKind { return SrcDevice }

func (ds *deviceSource) name() string { return ds.dev.path }

// Concurrent reads interleave at the descriptor level; the device hands out
// independent bytes to each caller either way.
func (ds *deviceSource) read(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), deviceChunk)
		if _, err := io.ReadFull(ds.fh, p[:n]); err != nil {
			if cos.IsEOF(err) {
				err = io.ErrUnexpectedEOF
			}
			return NewErrDeviceRead(ds.dev.path, err)
		}
		p = p[n:]
	}
	return nil
}

func (ds *deviceSource) close() {
	ds.fh = nil
	ds.dev.release()
}
