package main

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/flarebyte/sbtext/internal/argread"
)

type codedErr struct{ code int }

func (e codedErr) Error() string { return "coded\n  failure" }
func (e codedErr) ExitCode() int { return e.code }

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()
	_ = w.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(got)
}

func TestReportMissingArgument(t *testing.T) {
	var code int
	got := captureStderr(t, func() {
		code = report(&argread.MissingArgumentError{})
	})
	if got != "Error: Did not pass in a string to be converted\n" {
		t.Fatalf("unexpected stderr: %q", got)
	}
	if code != 1 {
		t.Fatalf("unexpected exit code: %d", code)
	}
}

func TestReportCollapsesWhitespaceAndKeepsCode(t *testing.T) {
	var code int
	got := captureStderr(t, func() {
		code = report(codedErr{code: 3})
	})
	if got != "Error: coded failure\n" {
		t.Fatalf("unexpected stderr: %q", got)
	}
	if code != 3 {
		t.Fatalf("unexpected exit code: %d", code)
	}
}

func TestReportPlainErrorExitsOne(t *testing.T) {
	var code int
	_ = captureStderr(t, func() {
		code = report(errors.New("boom"))
	})
	if code != 1 {
		t.Fatalf("unexpected exit code: %d", code)
	}
}
