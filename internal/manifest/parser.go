package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrNotFound is returned by Find when a directory has no descriptor.
var ErrNotFound = errors.New("no package descriptor found")

// Find returns the path of the first descriptor in FileNames present in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// Load finds and parses the descriptor in dir.
func Load(dir string) (*Package, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	return Parse(path)
}

// Parse reads a descriptor file. The format is chosen by extension:
// .yaml/.yml are decoded as YAML, everything else as JSON.
func Parse(path string) (*Package, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := decode(path, data)
	if err != nil {
		return nil, err
	}

	return &Package{
		Name:    stringField(raw, "name"),
		Version: stringField(raw, "version"),
		Main:    stringField(raw, "main"),
		Style:   stringField(raw, "style"),
		Raw:     raw,
		Path:    path,
	}, nil
}

// decode unmarshals a descriptor into a generic top-level object.
func decode(path string, data []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing descriptor %s: not an object", path)
	}
	return raw, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// stringField returns raw[key] when it is a string, "" otherwise.
func stringField(raw map[string]interface{}, key string) string {
	s, _ := raw[key].(string)
	return s
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
