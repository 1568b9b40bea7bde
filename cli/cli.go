package cli

// Version and Date may be set at build time by external build scripts, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/sbtext/cli.Version=1.2.3' -X 'github.com/flarebyte/sbtext/cli.Date=2026-10-19'"
//
// internal/buildinfo falls back to these when its own values are empty.
var (
	Version string
	Date    string
)
