package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

// Out and Err are where the plain (non-interactive) output goes.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	f, ok := Out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

func OK(msg string)   { fmt.Fprintln(Out, C(current.Success, current.SymOK+" "+msg)) }
func Warn(msg string) { fmt.Fprintln(Err, C(current.Warn, current.SymWarn+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, C(current.Error, current.SymFail+" "+msg)) }
