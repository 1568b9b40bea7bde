package version

import (
	"errors"
	"fmt"

	"github.com/flarebyte/sbtext/internal/buildinfo"
	"github.com/spf13/cobra"
)

var (
	flagShort bool
	flagJSON  bool
	flagYAML  bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON && flagYAML {
			return errors.New("flags --json and --yaml are mutually exclusive")
		}
		out := cmd.OutOrStdout()
		if flagShort || (!flagJSON && !flagYAML) {
			// Exactly one line.
			_, err := fmt.Fprintf(out, "sbtext %s\n", buildinfo.Summary())
			return err
		}

		// Structured output goes to stdout, the human line to stderr.
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "sbtext version: %s\n", buildinfo.Summary())
		if flagYAML {
			return encodeYAML(out, buildinfo.Info())
		}
		return encodeJSON(out, buildinfo.Info())
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	VersionCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print detailed YAML version info")
}
