package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentx-labs/libreg/internal/registry"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed libraries",
		Long:  `List every library with a package descriptor under the search roots.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := flags.registry(cmd)
			if err != nil {
				return err
			}
			libs, err := reg.List()
			if err != nil {
				return fmt.Errorf("listing libraries: %w", err)
			}

			if asJSON {
				return printListJSON(cmd, libs)
			}
			if len(libs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No libraries installed.")
				return nil
			}
			return printListTable(cmd, libs)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func printListTable(cmd *cobra.Command, libs []registry.Installed) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tMAIN\tSOURCE")
	for _, l := range libs {
		version, main := l.Version, l.Main
		if version == "" {
			version = "-"
		}
		if main == "" {
			main = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Name, version, main, l.Source)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	noun := "libraries"
	if len(libs) == 1 {
		noun = "library"
	}
	_, err := p.Fprintf(cmd.OutOrStdout(), "\n%d %s\n", len(libs), noun)
	return err
}

func printListJSON(cmd *cobra.Command, libs []registry.Installed) error {
	if libs == nil {
		libs = []registry.Installed{}
	}
	data, err := json.MarshalIndent(libs, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
