// Package nlog - osrand logger: timestamping, severity tagging, and writing
// to standard error and/or a log file
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

var (
	mw   sync.Mutex
	file *os.File // optional, see SetLogFile

	pool = sync.Pool{
		New: func() any { return new(bytes.Buffer) },
	}
)

// SetLogFile directs all severities to the given file (append, create).
// Without it the logger is quiet below warning level.
func SetLogFile(fqn string) error {
	fh, err := os.OpenFile(fqn, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o640)
	if err != nil {
		return err
	}
	mw.Lock()
	if file != nil {
		file.Close()
	}
	file = fh
	mw.Unlock()
	return nil
}

func Flush() {
	mw.Lock()
	if file != nil {
		file.Sync()
	}
	mw.Unlock()
}

// main function
func log(sev severity, depth int, format string, args ...any) {
	buf := pool.Get().(*bytes.Buffer)
	buf.Reset()
	formatHdr(sev, depth+1, buf)
	if format == "" {
		fmt.Fprint(buf, args...)
	} else {
		fmt.Fprintf(buf, format, args...)
	}
	if b := buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}

	mw.Lock()
	if file != nil {
		file.Write(buf.Bytes())
	}
	if sev >= sevWarn {
		os.Stderr.Write(buf.Bytes())
	}
	mw.Unlock()
	pool.Put(buf)
}

// "E 15:04:05.000000 file:line "
func formatHdr(s severity, depth int, buf *bytes.Buffer) {
	const char = "IWE"
	buf.WriteByte(char[s])
	buf.WriteByte(' ')
	buf.WriteString(time.Now().Format("15:04:05.000000"))
	buf.WriteByte(' ')

	_, fn, ln, ok := runtime.Caller(2 + depth)
	if !ok {
		return
	}
	// runtime.Caller always reports forward-slash paths
	if idx := strings.LastIndexByte(fn, '/'); idx > 0 {
		fn = fn[idx+1:]
	}
	if l := len(fn); l > 3 {
		fn = fn[:l-3] // strip ".go"
	}
	buf.WriteString(fn)
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(ln))
	buf.WriteByte(' ')
}
