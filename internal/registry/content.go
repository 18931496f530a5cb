package registry

import (
	"fmt"
	"os"

	"github.com/agentx-labs/libreg/internal/library"
)

// Get returns the text of lib's entry file.
func (r *LocalRegistry) Get(lib library.Library) (string, error) {
	path, err := r.Path(lib)
	if err != nil {
		return "", err
	}
	return readText(path)
}

// GetMinified returns minified text for lib. A pre-built artifact named by
// lib is returned verbatim. When lib names none, the entry file is read and
// run through the minifier for lib's content type. Every other failure,
// including a named artifact that is missing, is returned unchanged.
func (r *LocalRegistry) GetMinified(lib library.Library) (string, error) {
	path, err := r.MinifiedPath(lib)
	switch {
	case err == nil:
		return readText(path)
	case !IsKind(err, KindNoMinifiedPath):
		return "", err
	}

	r.logger.Debug("no minified artifact, minifying entry", "lib", lib.Name(), "type", lib.ContentType())

	src, err := r.Get(lib)
	if err != nil {
		return "", err
	}

	m, err := r.minifiers.For(lib.ContentType())
	if err != nil {
		return "", err
	}
	out, err := m.Minify(src)
	if err != nil {
		return "", fmt.Errorf("minifying %s: %w", lib.Name(), err)
	}
	return out, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
