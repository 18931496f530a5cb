package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/libreg/internal/branding"
	"github.com/agentx-labs/libreg/internal/config"
	"github.com/agentx-labs/libreg/internal/logging"
	"github.com/agentx-labs/libreg/internal/registry"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// rootFlags holds global flag values shared by every subcommand.
type rootFlags struct {
	roots    []string
	logLevel string
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` resolves installed front-end libraries (jquery, bootstrap, ...)
to files on disk, checking the installed version against a semver range and
producing minified output on demand.

Search roots are read from --root, then LIBREG_ROOTS, then the "roots" key in
~/.libreg/config.yaml, and default to ./node_modules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
	}

	root.PersistentFlags().StringArrayVarP(&flags.roots, "root", "r", nil, "Search root (repeatable, highest priority first)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newPathCmd(flags))
	root.AddCommand(newMinPathCmd(flags))
	root.AddCommand(newCatCmd(flags))
	root.AddCommand(newMinCmd(flags))
	root.AddCommand(newListCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// logger returns the logger for a command, writing to its stderr.
func (f *rootFlags) logger(cmd *cobra.Command) *log.Logger {
	level := f.logLevel
	if level == "" {
		level = config.LogLevel()
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

// registry builds a LocalRegistry from --root flags or configuration.
func (f *rootFlags) registry(cmd *cobra.Command) (*registry.LocalRegistry, error) {
	var (
		roots []string
		err   error
	)
	if len(f.roots) > 0 {
		roots, err = config.Absolute(f.roots)
	} else {
		roots, err = config.Roots()
	}
	if err != nil {
		return nil, fmt.Errorf("resolving search roots: %w", err)
	}

	logger := f.logger(cmd)
	logger.Debug("search roots", "roots", roots)
	return registry.New(roots, registry.WithLogger(logger)), nil
}
