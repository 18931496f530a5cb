package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(flags *rootFlags) *cobra.Command {
	req := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "path <library>",
		Short: "Print the entry file of an installed library",
		Long: `Print the absolute path of a library's entry file. The entry is the
manifest's main field unless --path names another file.`,
		Example: `  libreg path jquery --version 3
  libreg path bootstrap --path dist/css/bootstrap.css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := req.library(args[0])
			if err != nil {
				return err
			}
			reg, err := flags.registry(cmd)
			if err != nil {
				return err
			}

			path, err := reg.Path(lib)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	req.register(cmd)
	return cmd
}

func newMinPathCmd(flags *rootFlags) *cobra.Command {
	req := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "min-path <library>",
		Short: "Print the pre-built minified file of an installed library",
		Long: `Print the absolute path of the minified file named by --min-path.
No file name is guessed: without --min-path the command fails.`,
		Example: `  libreg min-path jquery --min-path dist/jquery.min.js`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := req.library(args[0])
			if err != nil {
				return err
			}
			reg, err := flags.registry(cmd)
			if err != nil {
				return err
			}

			path, err := reg.MinifiedPath(lib)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	req.register(cmd)
	return cmd
}
