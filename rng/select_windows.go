// Package rng provides cryptographically secure random bytes sourced
// directly from the operating system.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package rng

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/NVIDIA/osrand/cmn/nlog"
)

const (
	nameCNG = "BCryptGenRandom"
	nameCSP = "CryptGenRandom"
	nameRTL = "RtlGenRandom"
)

// ULONG bounds each OS call; larger requests go out in sub-calls
const winChunk = 1 << 30

// legacy CryptoAPI
const (
	provRSAFull        = 1          // PROV_RSA_FULL
	cryptVerifyContext = 0xf0000000 // CRYPT_VERIFYCONTEXT
)

// modern CNG first, legacy CSP second, RtlGenRandom last
var probes = []probe{
	{name: nameCNG, open: newCNGSource},
	{name: nameCSP, open: newCSPSource},
	{name: nameRTL, open: newRTLSource},
}

type (
	// cngSource keeps bcrypt.dll loaded and an open "RNG" algorithm
	// provider for its entire lifetime; close releases both in reverse
	// order of acquisition.
	cngSource struct {
		lib       windows.Handle
		prov      uintptr // BCRYPT_ALG_HANDLE
		genRandom uintptr
		closeProv uintptr
	}
	// cspSource keeps advapi32.dll loaded and an acquired legacy CSP
	// context (HCRYPTPROV); close releases both in reverse order.
	cspSource struct {
		lib        windows.Handle
		prov       uintptr // HCRYPTPROV
		genRandom  uintptr
		releaseCtx uintptr
	}
	// rtlSource keeps advapi32.dll loaded and calls its undocumented
	// SystemFunction036 export.
	rtlSource struct {
		lib  windows.Handle
		proc uintptr
	}
)

// interface guards
var (
	_ source = (*cngSource)(nil)
	_ source = (*cspSource)(nil)
	_ source = (*rtlSource)(nil)
)

func freeLibrary(h windows.Handle) {
	if err := windows.FreeLibrary(h); err != nil {
		nlog.Errorf("FreeLibrary: %v", err)
	}
}

///////////////
// cngSource //
///////////////

func newCNGSource() (source, error) {
	lib, err := windows.LoadLibraryEx("bcrypt.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, err
	}
	openProv, err := windows.GetProcAddress(lib, "BCryptOpenAlgorithmProvider")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	closeProv, err := windows.GetProcAddress(lib, "BCryptCloseAlgorithmProvider")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	genRandom, err := windows.GetProcAddress(lib, "BCryptGenRandom")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	alg, err := windows.UTF16PtrFromString("RNG") // BCRYPT_RNG_ALGORITHM
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	var prov uintptr
	st, _, _ := syscall.SyscallN(openProv, uintptr(unsafe.Pointer(&prov)), uintptr(unsafe.Pointer(alg)), 0, 0)
	if st != 0 {
		freeLibrary(lib)
		return nil, fmt.Errorf(fmtErrStatus, "BCryptOpenAlgorithmProvider", st)
	}
	return &cngSource{lib: lib, prov: prov, genRandom: genRandom, closeProv: closeProv}, nil
}

func (*cngSource) kind() SourceKind { return SrcCNG }

func (*cngSource) name() string { return nameCNG }

func (s *cngSource) read(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), winChunk)
		st, _, _ := syscall.SyscallN(s.genRandom, s.prov, uintptr(unsafe.Pointer(&p[0])), uintptr(n), 0)
		if st != 0 {
			return NewErrSourceUnavailable(nameCNG, fmt.Errorf(fmtErrStatus, nameCNG, st))
		}
		p = p[n:]
	}
	return nil
}

func (s *cngSource) close() {
	if st, _, _ := syscall.SyscallN(s.closeProv, s.prov, 0); st != 0 {
		nlog.Errorf(fmtErrStatus, "BCryptCloseAlgorithmProvider", st)
	}
	s.prov = 0
	freeLibrary(s.lib)
	s.lib = 0
}

///////////////
// cspSource //
///////////////

func newCSPSource() (source, error) {
	lib, err := windows.LoadLibraryEx("advapi32.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, err
	}
	acquireCtx, err := windows.GetProcAddress(lib, "CryptAcquireContextW")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	releaseCtx, err := windows.GetProcAddress(lib, "CryptReleaseContext")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	genRandom, err := windows.GetProcAddress(lib, "CryptGenRandom")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	var prov uintptr
	ok, _, errno := syscall.SyscallN(acquireCtx, uintptr(unsafe.Pointer(&prov)), 0, 0, provRSAFull, cryptVerifyContext)
	if ok == 0 {
		freeLibrary(lib)
		return nil, fmt.Errorf("CryptAcquireContextW: %w", errno)
	}
	return &cspSource{lib: lib, prov: prov, genRandom: genRandom, releaseCtx: releaseCtx}, nil
}

func (*cspSource) kind() SourceKind { return SrcCryptoAPI }

func (*cspSource) name() string { return nameCSP }

func (s *cspSource) read(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), winChunk)
		if ok, _, errno := syscall.SyscallN(s.genRandom, s.prov, uintptr(n), uintptr(unsafe.Pointer(&p[0]))); ok == 0 {
			return NewErrSourceUnavailable(nameCSP, errno)
		}
		p = p[n:]
	}
	return nil
}

func (s *cspSource) close() {
	if ok, _, errno := syscall.SyscallN(s.releaseCtx, s.prov, 0); ok == 0 {
		nlog.Errorf("CryptReleaseContext: %v", errno)
	}
	s.prov = 0
	freeLibrary(s.lib)
	s.lib = 0
}

///////////////
// rtlSource //
///////////////

func newRTLSource() (source, error) {
	lib, err := windows.LoadLibraryEx("advapi32.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, err
	}
	proc, err := windows.GetProcAddress(lib, "SystemFunction036")
	if err != nil {
		freeLibrary(lib)
		return nil, err
	}
	return &rtlSource{lib: lib, proc: proc}, nil
}

func (*rtlSource) kind() SourceKind { return SrcRTL }

func (*rtlSource) name() string { return nameRTL }

func (s *rtlSource) read(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), winChunk)
		// BOOLEAN return, no last-error contract
		if ok, _, _ := syscall.SyscallN(s.proc, uintptr(unsafe.Pointer(&p[0])), uintptr(n)); ok == 0 {
			return NewErrSourceUnavailable(nameRTL, nil)
		}
		p = p[n:]
	}
	return nil
}

func (s *rtlSource) close() {
	freeLibrary(s.lib)
	s.lib = 0
}
