package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCatCmd(flags *rootFlags) *cobra.Command {
	req := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "cat <library>",
		Short: "Print the contents of a library's entry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := req.library(args[0])
			if err != nil {
				return err
			}
			reg, err := flags.registry(cmd)
			if err != nil {
				return err
			}

			text, err := reg.Get(lib)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), text)
		},
	}
	req.register(cmd)
	return cmd
}

func newMinCmd(flags *rootFlags) *cobra.Command {
	req := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "min <library>",
		Short: "Print minified contents of a library",
		Long: `Print the minified form of a library. The file named by --min-path is
printed as is; without --min-path the entry file is minified with the
JavaScript or CSS minifier selected by --type.`,
		Example: `  libreg min jquery --min-path dist/jquery.min.js
  libreg min bootstrap --path dist/css/bootstrap.css --type css`,
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

			text, err := reg.GetMinified(lib)
			if err != nil {
				return err
			}
			return writeText(cmd.OutOrStdout(), text)
		},
	}
	req.register(cmd)
	return cmd
}

func writeText(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
