package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/libreg/internal/library"
)

// requestFlags describe a library request on the command line.
type requestFlags struct {
	version      string
	path         string
	minifiedPath string
	contentType  string
}

func (r *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.version, "version", "V", library.LatestVersion, "Semver range the installed version must satisfy")
	cmd.Flags().StringVarP(&r.path, "path", "p", library.MainPath, "Entry file relative to the library (default: manifest main)")
	cmd.Flags().StringVarP(&r.minifiedPath, "min-path", "m", "", "Pre-built minified file relative to the library")
	cmd.Flags().StringVarP(&r.contentType, "type", "t", "", "Content type for minification: js or css (default: from --path extension)")
}

// library builds the request for the named library.
func (r *requestFlags) library(name string) (library.Library, error) {
	ct := library.ContentTypeFromPath(r.path)
	if r.contentType != "" {
		parsed, err := library.ParseContentType(r.contentType)
		if err != nil {
			return library.Library{}, err
		}
		ct = parsed
	}

	lib, err := library.New(name,
		library.WithVersion(r.version),
		library.WithPath(r.path),
		library.WithMinifiedPath(r.minifiedPath),
		library.WithContentType(ct),
	)
	if err != nil {
		return library.Library{}, fmt.Errorf("building request: %w", err)
	}
	return lib, nil
}
