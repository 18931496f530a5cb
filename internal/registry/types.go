package registry

// Source is a root directory that may contain installed libraries.
type Source struct {
	Name     string // e.g., "project", "global"
	BasePath string // absolute path to the root
}

// Installed describes a library found while listing the roots.
type Installed struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Main     string `json:"main,omitempty"`
	Dir      string `json:"dir"`
	Source   string `json:"source"`
	Manifest string `json:"manifest"`
}
