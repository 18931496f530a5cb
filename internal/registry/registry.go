package registry

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/agentx-labs/libreg/internal/library"
	"github.com/agentx-labs/libreg/internal/logging"
	"github.com/agentx-labs/libreg/internal/manifest"
	"github.com/agentx-labs/libreg/internal/minify"
)

// LocalRegistry resolves libraries installed under an ordered list of roots.
// It is safe for concurrent use; its fields are never written after New.
type LocalRegistry struct {
	sources   []Source
	logger    *log.Logger
	minifiers minify.Set
}

// Option configures a LocalRegistry.
type Option func(*LocalRegistry)

// WithLogger sets the logger used for resolution tracing.
func WithLogger(l *log.Logger) Option {
	return func(r *LocalRegistry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMinifiers replaces the minifiers used to synthesize minified content.
func WithMinifiers(set minify.Set) Option {
	return func(r *LocalRegistry) {
		r.minifiers = set
	}
}

// New creates a registry searching roots in order. Roots are named by
// their position ("root0", "root1", ...).
func New(roots []string, opts ...Option) *LocalRegistry {
	sources := make([]Source, 0, len(roots))
	for i, root := range roots {
		sources = append(sources, Source{Name: "root" + strconv.Itoa(i), BasePath: root})
	}
	return NewFromSources(sources, opts...)
}

// NewFromSources creates a registry from named sources, highest priority first.
func NewFromSources(sources []Source, opts ...Option) *LocalRegistry {
	r := &LocalRegistry{
		sources:   append([]Source(nil), sources...),
		logger:    logging.Discard(),
		minifiers: minify.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sources returns a copy of the configured sources in search order.
func (r *LocalRegistry) Sources() []Source {
	return append([]Source(nil), r.sources...)
}

// LibDir returns the directory of lib in the first root that contains one.
// A library missing from every root is reported with ok == false, not an error.
func (r *LocalRegistry) LibDir(lib library.Library) (dir string, ok bool) {
	for _, src := range r.sources {
		candidate := filepath.Join(src.BasePath, lib.Name())
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			r.logger.Debug("library not in root", "lib", lib.Name(), "root", src.BasePath)
			continue
		}
		r.logger.Debug("library found", "lib", lib.Name(), "dir", candidate, "source", src.Name)
		return candidate, true
	}
	return "", false
}

// Manifest reads the package descriptor of lib. A missing directory, a
// missing descriptor and an unparsable descriptor all report
// KindLibraryDoesNotExist.
func (r *LocalRegistry) Manifest(lib library.Library) (*manifest.Package, error) {
	dir, err := r.requireDir("manifest", lib)
	if err != nil {
		return nil, err
	}
	return r.loadManifest("manifest", lib, dir)
}

func (r *LocalRegistry) requireDir(op string, lib library.Library) (string, error) {
	dir, ok := r.LibDir(lib)
	if !ok {
		return "", &OpError{Op: op, Kind: KindLibraryDoesNotExist, Library: lib.Name()}
	}
	return dir, nil
}

func (r *LocalRegistry) loadManifest(op string, lib library.Library, dir string) (*manifest.Package, error) {
	pkg, err := manifest.Load(dir)
	if err != nil {
		return nil, &OpError{Op: op, Kind: KindLibraryDoesNotExist, Library: lib.Name(), Path: dir, Err: err}
	}
	return pkg, nil
}
