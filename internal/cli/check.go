package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/libreg/internal/library"
	"github.com/agentx-labs/libreg/internal/manifest"
	"github.com/agentx-labs/libreg/internal/registry"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <library>",
		Short: "Validate the package descriptor of an installed library",
		Long: `Check that a library's package.json (or package.yaml) carries the fields
the registry reads: a version string and, when present, a string main entry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.New(args[0])
			if err != nil {
				return err
			}
			reg, err := flags.registry(cmd)
			if err != nil {
				return err
			}

			dir, ok := reg.LibDir(lib)
			if !ok {
				return &registry.OpError{Op: "check", Kind: registry.KindLibraryDoesNotExist, Library: lib.Name()}
			}
			path, err := manifest.Find(dir)
			if err != nil {
				return &registry.OpError{Op: "check", Kind: registry.KindLibraryDoesNotExist, Library: lib.Name(), Path: dir, Err: err}
			}

			result, err := manifest.ValidateFile(path)
			if err != nil {
				return fmt.Errorf("validating %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintf(out, "%s: ok\n", path)
				return nil
			}
			fmt.Fprintf(out, "%s: invalid\n", path)
			for _, issue := range result.Issues {
				loc := issue.Path
				if loc == "" {
					loc = "/"
				}
				fmt.Fprintf(out, "  %s: %s (%s)\n", loc, issue.Message, issue.Keyword)
			}
			return fmt.Errorf("%s has %d issue(s)", path, len(result.Issues))
		},
	}
}
