package manifest

// FileNames is the lookup order for a library's descriptor.
var FileNames = []string{"package.json", "package.yaml"}

// Package is a parsed package descriptor.
type Package struct {
	Name    string
	Version string
	Main    string
	Style   string

	// Raw holds every top-level field as decoded, including the ones above.
	Raw map[string]interface{}

	// Path is the file the descriptor was read from.
	Path string
}

// HasMain reports whether the descriptor declares a non-empty main entry.
func (p *Package) HasMain() bool {
	return p.Main != ""
}
