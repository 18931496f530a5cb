package registry

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/agentx-labs/libreg/internal/manifest"
)

// List walks every root and returns the libraries installed there, sorted
// by name. A library present in several roots is reported once, from the
// highest-priority root. Directories without a readable descriptor and
// roots that cannot be read are skipped.
func (r *LocalRegistry) List() ([]Installed, error) {
	seen := make(map[string]bool)
	var result []Installed

	for _, src := range r.sources {
		libs, err := r.walkSource(src)
		if err != nil {
			r.logger.Debug("skipping root", "root", src.BasePath, "err", err)
			continue
		}
		for _, lib := range libs {
			if !seen[lib.Name] {
				seen[lib.Name] = true
				result = append(result, lib)
			}
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// walkSource lists the immediate subdirectories of one root that carry a
// package descriptor. Scoped packages (@scope/name) are looked up one
// level deeper.
func (r *LocalRegistry) walkSource(src Source) ([]Installed, error) {
	entries, err := os.ReadDir(src.BasePath)
	if err != nil {
		return nil, err
	}

	var result []Installed
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name[0] == '@' {
			scoped, err := os.ReadDir(filepath.Join(src.BasePath, name))
			if err != nil {
				continue
			}
			for _, sub := range scoped {
				if sub.IsDir() {
					if lib, ok := inspect(src, name+"/"+sub.Name()); ok {
						result = append(result, lib)
					}
				}
			}
			continue
		}
		if name[0] == '.' {
			continue
		}
		if lib, ok := inspect(src, name); ok {
			result = append(result, lib)
		}
	}
	return result, nil
}

func inspect(src Source, name string) (Installed, bool) {
	dir := filepath.Join(src.BasePath, filepath.FromSlash(name))
	pkg, err := manifest.Load(dir)
	if err != nil {
		return Installed{}, false
	}
	return Installed{
		Name:     name,
		Version:  pkg.Version,
		Main:     pkg.Main,
		Dir:      dir,
		Source:   src.Name,
		Manifest: pkg.Path,
	}, true
}
