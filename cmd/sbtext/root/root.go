package root

import (
	"fmt"

	"github.com/flarebyte/sbtext/cmd/sbtext/version"
	"github.com/flarebyte/sbtext/internal/argread"
	"github.com/flarebyte/sbtext/internal/textconv"
	"github.com/spf13/cobra"
)

const defaultProgram = "sbtext"

// NewRootCmd creates the root command for sbtext. program is the name the
// binary was invoked as; it is handed to the argument reader as argv[0].
func NewRootCmd(program string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sbtext <text>",
		Short: "Convert text to alternating case: HeLlO, wOrLd!",
		Long: "Convert text to alternating case: HeLlO, wOrLd!\n\n" +
			"Only the first argument is converted, verbatim; the rest are ignored.\n" +
			"The single reserved word is 'version', which prints build information.",
		Args: cobra.ArbitraryArgs,
		// argv reaches the argument reader untouched: "-abc" is text, not flags.
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{program}, args...)
			text, err := argread.First(argv)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), textconv.Convert(text))
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands. An unnamed hidden help command keeps "help" convertible.
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// Execute runs the root command with the full process argument vector,
// program name included.
func Execute(argv []string) error {
	program := defaultProgram
	// Non-nil so cobra does not fall back to os.Args.
	rest := []string{}
	if len(argv) > 0 {
		program = argv[0]
		rest = argv[1:]
	}
	cmd := NewRootCmd(program)
	cmd.SetArgs(rest)
	return cmd.Execute()
}
