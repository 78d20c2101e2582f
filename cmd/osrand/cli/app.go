// Package cli implements the osrand command-line utility.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/NVIDIA/osrand/cmn/cos"
	"github.com/NVIDIA/osrand/cmn/nlog"
	"github.com/NVIDIA/osrand/rng"

	"github.com/fatih/color"
	"github.com/urfave/cli"
)

const (
	Version = "1.0.0"

	cliName  = "osrand"
	cliUsage = "generate cryptographically secure random bytes straight from the OS"
)

// exit codes
const (
	codeUsage     = 1 // missing or extra arguments
	codeNoSource  = 2 // no usable entropy source
	codeGenWrite  = 3 // generation or write failure
	codeRange     = 4 // COUNT exceeds the representable range
	codeNotNumber = 5 // COUNT is not a valid non-negative integer
)

type acli struct {
	app       *cli.App
	outWriter io.Writer
	errWriter io.Writer
}

var (
	outputFlag  = cli.StringFlag{Name: "output,o", Usage: "write to `FILE` instead of standard output"}
	logFlag     = cli.StringFlag{Name: "log", Usage: "append warnings and errors to `FILE`"}
	verboseFlag = cli.BoolFlag{Name: "verbose,v", Usage: "report the committed source and byte total on standard error"}
	noColorFlag = cli.BoolFlag{Name: "no-color", Usage: "disable colored output"}
)

// color
var (
	fred  = color.New(color.FgHiRed).SprintFunc()
	fcyan = color.New(color.FgHiCyan).SprintFunc()
)

// VersionStr appends the build stamp when one was linked in.
func VersionStr(build string) string {
	if build == "" {
		return Version
	}
	return Version + "." + build
}

// main method
func Run(version string, args []string) error {
	a := acli{app: cli.NewApp(), outWriter: os.Stdout, errWriter: os.Stderr}
	a.init(version)
	defer nlog.Flush()
	return a.app.Run(args)
}

func (a *acli) init(version string) {
	app := a.app

	app.Name = cliName
	app.Usage = cliUsage
	app.Version = version
	app.ArgsUsage = "COUNT"
	app.HideHelp = true
	app.Flags = []cli.Flag{cli.HelpFlag, outputFlag, logFlag, verboseFlag, noColorFlag}
	app.Writer = a.outWriter
	app.ErrWriter = a.errWriter
	app.Before = onBeforeCommand // to disable colors if `no-color' is set
	app.Action = a.generate
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version, V",
		Usage: "print only the version",
	}
}

// Coloring is automatically disabled when TERM="dumb" or stdout is
// redirected; the flag can only ever disable it, never force it back.
func onBeforeCommand(c *cli.Context) error {
	if c.Bool(firstName(noColorFlag)) {
		color.NoColor = true
	}
	if fqn := c.String(firstName(logFlag)); fqn != "" {
		if err := nlog.SetLogFile(fqn); err != nil {
			return cli.NewExitError(redErr(err), codeGenWrite)
		}
	}
	return nil
}

func firstName(flag cli.Flag) string {
	return strings.TrimSpace(strings.Split(flag.GetName(), ",")[0])
}

func redErr(err error) error {
	msg := strings.TrimRight(err.Error(), "\n")
	return errors.New(fred("Error: ") + msg)
}

// COUNT must be a non-negative decimal integer that fits a signed 64-bit
// byte total; the two rejection flavors carry distinct exit codes.
func parseCount(arg string) (int64, error) {
	u, err := strconv.ParseUint(arg, 10, 63)
	if err == nil {
		return int64(u), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, cli.NewExitError(redErr(fmt.Errorf("COUNT %q exceeds the supported range", arg)), codeRange)
	}
	return 0, cli.NewExitError(redErr(fmt.Errorf("COUNT %q is not a valid non-negative integer", arg)), codeNotNumber)
}

func (a *acli) generate(c *cli.Context) error {
	if c.NArg() != 1 {
		return a.usageErr(c)
	}
	count, err := parseCount(c.Args().First())
	if err != nil {
		return err
	}

	g, err := rng.New()
	if err != nil {
		return cli.NewExitError(redErr(err), codeNoSource)
	}
	defer g.Close()

	var (
		out io.Writer = a.outWriter
		fh  *os.File
	)
	if fname := c.String(firstName(outputFlag)); fname != "" {
		fh, err = os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, cos.PermRWR)
		if err != nil {
			return cli.NewExitError(redErr(err), codeGenWrite)
		}
		out = fh
	}

	written, err := io.CopyN(out, g, count)
	if err == nil && fh != nil {
		err = cos.FlushClose(fh)
		fh = nil
	}
	if err != nil {
		if fh != nil {
			cos.Close(fh)
		}
		return cli.NewExitError(redErr(err), codeGenWrite)
	}

	if c.Bool(firstName(verboseFlag)) {
		fmt.Fprintf(a.errWriter, "wrote %s (%d B) via %s\n",
			cos.ToSizeIEC(written, 2), written, fcyan(g.SourceName()))
	}
	return nil
}

// No COUNT: show usage plus a one-line diagnostic naming the source this
// host would commit to.
func (a *acli) usageErr(c *cli.Context) error {
	_ = cli.ShowAppHelp(c)
	if g, err := rng.New(); err == nil {
		fmt.Fprintf(a.errWriter, "\nentropy source on this host: %s [%s]\n",
			fcyan(g.SourceName()), g.Source())
		g.Close()
	} else {
		fmt.Fprintln(a.errWriter, redErr(err))
	}
	return cli.NewExitError("", codeUsage)
}
