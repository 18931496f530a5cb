package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/libreg/internal/library"
	"github.com/agentx-labs/libreg/internal/manifest"
)

// resolved is the outcome of directory discovery and version validation.
// pkg is nil when the request accepted any version and the descriptor was
// not needed yet.
type resolved struct {
	dir string
	pkg *manifest.Package
}

// resolveVersion locates lib and checks its installed version against the
// requested range. The "latest" sentinel skips the check.
func (r *LocalRegistry) resolveVersion(op string, lib library.Library) (*resolved, error) {
	dir, err := r.requireDir(op, lib)
	if err != nil {
		return nil, err
	}
	if lib.IsLatest() {
		return &resolved{dir: dir}, nil
	}

	pkg, err := r.loadManifest(op, lib, dir)
	if err != nil {
		return nil, err
	}

	ok, err := Satisfies(pkg.Version, lib.Version())
	if err != nil {
		return nil, &OpError{Op: op, Kind: KindVersionDoesNotMatch, Library: lib.Name(), Path: pkg.Path, Err: err}
	}
	if !ok {
		return nil, &OpError{
			Op:      op,
			Kind:    KindVersionDoesNotMatch,
			Library: lib.Name(),
			Path:    pkg.Path,
			Err:     fmt.Errorf("installed %s does not satisfy %s", pkg.Version, lib.Version()),
		}
	}
	r.logger.Debug("version accepted", "lib", lib.Name(), "installed", pkg.Version, "range", lib.Version())
	return &resolved{dir: dir, pkg: pkg}, nil
}

// Path returns the absolute path of lib's entry file. An explicit path on
// lib wins over the descriptor's main field, which is not read at all in
// that case.
func (r *LocalRegistry) Path(lib library.Library) (string, error) {
	const op = "path"

	res, err := r.resolveVersion(op, lib)
	if err != nil {
		return "", err
	}

	rel := lib.Path()
	if lib.UsesMain() {
		if res.pkg == nil {
			if res.pkg, err = r.loadManifest(op, lib, res.dir); err != nil {
				return "", err
			}
		}
		if !res.pkg.HasMain() {
			return "", &OpError{Op: op, Kind: KindNoMain, Library: lib.Name(), Path: res.pkg.Path,
				Err: fmt.Errorf("descriptor declares no main entry")}
		}
		rel = res.pkg.Main
	}

	full := filepath.Join(res.dir, rel)
	if !isFile(full) {
		return "", &OpError{Op: op, Kind: KindNoMain, Library: lib.Name(), Path: full}
	}
	return absolute(full)
}

// MinifiedPath returns the absolute path of lib's pre-built minified file.
// No file name is ever guessed: a library without a minified path fails
// with KindNoMinifiedPath.
func (r *LocalRegistry) MinifiedPath(lib library.Library) (string, error) {
	const op = "minified path"

	res, err := r.resolveVersion(op, lib)
	if err != nil {
		return "", err
	}

	rel, ok := lib.MinifiedPath()
	if !ok {
		return "", &OpError{Op: op, Kind: KindNoMinifiedPath, Library: lib.Name()}
	}

	full := filepath.Join(res.dir, rel)
	if !isFile(full) {
		return "", &OpError{Op: op, Kind: KindLibraryDoesNotExist, Library: lib.Name(), Path: full}
	}
	return absolute(full)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path of %s: %w", path, err)
	}
	return abs, nil
}
