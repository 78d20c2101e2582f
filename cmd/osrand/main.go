// Package main is the command-line utility to generate OS-sourced random bytes.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"os"
	"os/signal"

	"github.com/NVIDIA/osrand/cmd/osrand/cli"
	"github.com/NVIDIA/osrand/cmn/cos"
)

var build string

func dispatchInterruptHandler() {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	go func() {
		<-stopCh
		os.Exit(0)
	}()
}

func main() {
	dispatchInterruptHandler()

	if err := cli.Run(cli.VersionStr(build), os.Args); err != nil {
		cos.Exitf("%v", err)
	}
}
