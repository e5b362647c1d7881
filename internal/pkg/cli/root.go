// Package cli provides the "db-merge" command.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/keboola/db-merge/internal/pkg/log"
	"github.com/keboola/db-merge/internal/pkg/utils/errors"
)

const description = `
Merge planner for database writers

Generates the statement script that reconciles
a staged source table into a persistent target table.
`

type rootCommand struct {
	cmd     *cobra.Command
	logger  log.Logger
	verbose bool
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer) *rootCommand {
	root := &rootCommand{}
	root.cmd = &cobra.Command{
		Use:           "db-merge",
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	// Setup in/out
	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)

	// Persistent flags for all sub-commands
	flags := root.cmd.PersistentFlags()
	flags.SortFlags = true
	flags.BoolVarP(&root.verbose, "verbose", "v", false, "print details")

	// Logger is created when flags are parsed
	root.cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		root.logger = log.NewCliLogger(cmd.OutOrStdout(), cmd.ErrOrStderr(), root.verbose)
	}

	// Sub-commands
	root.cmd.AddCommand(
		planCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	if err := root.cmd.Execute(); err != nil {
		if root.logger == nil {
			root.logger = log.NewCliLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), false)
		}
		root.logger.Error(errors.Format(err, errors.FormatAsSentences()))
		return 1
	}
	return 0
}
