package library

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// LatestVersion accepts whatever version is installed.
	LatestVersion = "latest"

	// MainPath selects the entry declared by the package manifest.
	MainPath = "main"
)

// ErrEmptyName is returned by New when no library name is given.
var ErrEmptyName = errors.New("library name is required")

// ContentType selects the minifier used when a minified variant is synthesized.
type ContentType int

const (
	JavaScript ContentType = iota
	Stylesheet
)

// String returns the short name used on the command line ("js" or "css").
func (c ContentType) String() string {
	switch c {
	case Stylesheet:
		return "css"
	default:
		return "js"
	}
}

// MediaType returns the MIME type for the content type.
func (c ContentType) MediaType() string {
	switch c {
	case Stylesheet:
		return "text/css"
	default:
		return "application/javascript"
	}
}

// ParseContentType maps "js"/"javascript" and "css"/"stylesheet" to a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "js", "javascript":
		return JavaScript, nil
	case "css", "stylesheet":
		return Stylesheet, nil
	default:
		return JavaScript, fmt.Errorf("unknown content type %q (want js or css)", s)
	}
}

// ContentTypeFromPath infers the content type from a file extension.
// Anything other than .css is treated as JavaScript.
func ContentTypeFromPath(path string) ContentType {
	if strings.EqualFold(filepath.Ext(path), ".css") {
		return Stylesheet
	}
	return JavaScript
}

// Library describes a requested library. The zero value is not usable;
// construct one with New.
type Library struct {
	name         string
	version      string
	path         string
	minifiedPath string
	contentType  ContentType
}

// Option customizes a Library at construction.
type Option func(*Library)

// WithVersion sets the semver range the installed version must satisfy.
// An empty range keeps the "latest" default.
func WithVersion(version string) Option {
	return func(l *Library) {
		if version != "" {
			l.version = version
		}
	}
}

// WithPath overrides the manifest's main entry with an explicit relative path.
func WithPath(path string) Option {
	return func(l *Library) {
		if path != "" {
			l.path = path
		}
	}
}

// WithMinifiedPath names a pre-built minified artifact relative to the library directory.
func WithMinifiedPath(path string) Option {
	return func(l *Library) {
		l.minifiedPath = path
	}
}

// WithContentType sets the content type used for on-demand minification.
func WithContentType(ct ContentType) Option {
	return func(l *Library) {
		l.contentType = ct
	}
}

// New builds a Library named name with defaults applied: version "latest",
// path "main", no minified path, JavaScript content.
func New(name string, opts ...Option) (Library, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Library{}, ErrEmptyName
	}

	l := Library{
		name:        name,
		version:     LatestVersion,
		path:        MainPath,
		contentType: JavaScript,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l, nil
}

// MustNew is like New but panics on error. Intended for tests and static tables.
func MustNew(name string, opts ...Option) Library {
	l, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Library) Name() string             { return l.name }
func (l Library) Version() string          { return l.version }
func (l Library) Path() string             { return l.path }
func (l Library) ContentType() ContentType { return l.contentType }

// MinifiedPath returns the minified artifact path and whether one was given.
func (l Library) MinifiedPath() (string, bool) {
	return l.minifiedPath, l.minifiedPath != ""
}

// IsLatest reports whether any installed version is acceptable.
func (l Library) IsLatest() bool {
	return l.version == LatestVersion
}

// UsesMain reports whether the entry file comes from the manifest.
func (l Library) UsesMain() bool {
	return l.path == MainPath
}

// String renders the library as name@version, with the path when overridden.
func (l Library) String() string {
	s := l.name + "@" + l.version
	if !l.UsesMain() {
		s += "/" + l.path
	}
	return s
}
