package cmd

import (
	"github.com/spf13/cobra"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "ghdump <owner/repo> <item>...",
		Short: "Dump GitHub PRs, issues, and commits as analysis-ready text",
		Long: `A CLI tool that fetches GitHub pull requests, issues, and commits and
serializes each one into a self-contained plain-text document suitable
for feeding to an LLM or archiving.

Numeric items are looked up as issues or pull requests; anything else is
treated as a commit SHA.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	addDumpFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdRateLimit())

	return rootCmd
}
