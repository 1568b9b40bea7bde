package main

import (
	"errors"
	"os"
	"strings"

	"github.com/flarebyte/sbtext/cmd/sbtext/root"
)

type exitCoder interface {
	ExitCode() int
}

func main() {
	if err := root.Execute(os.Args); err != nil {
		os.Exit(report(err))
	}
}

// report prints a short, single-line error to stderr and returns the exit
// code carried by err, or 1. Usage and stack traces are never printed.
func report(err error) int {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = os.Stderr.WriteString("Error: " + msg + "\n")
	code := 1
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	return code
}
