package registry

import (
	"errors"
	"fmt"
)

// ErrorKind classifies which resolution step failed.
type ErrorKind string

const (
	// KindLibraryDoesNotExist: the library directory (or its descriptor) is
	// missing from every root, or a requested minified artifact is missing.
	KindLibraryDoesNotExist ErrorKind = "library_does_not_exist"
	KindVersionDoesNotMatch ErrorKind = "version_does_not_match"
	KindNoMain              ErrorKind = "no_main"
	KindNoMinifiedPath      ErrorKind = "no_minified_path"
)

// Sentinel errors, one per kind, matched by errors.Is on any *OpError.
var (
	ErrLibraryDoesNotExist = errors.New("library does not exist")
	ErrVersionDoesNotMatch = errors.New("version does not match")
	ErrNoMain              = errors.New("no main file")
	ErrNoMinifiedPath      = errors.New("no minified path")
)

var kindSentinels = map[ErrorKind]error{
	KindLibraryDoesNotExist: ErrLibraryDoesNotExist,
	KindVersionDoesNotMatch: ErrVersionDoesNotMatch,
	KindNoMain:              ErrNoMain,
	KindNoMinifiedPath:      ErrNoMinifiedPath,
}

// OpError reports a failed resolution step for a library.
type OpError struct {
	Op      string
	Kind    ErrorKind
	Library string
	Path    string // Optional: the path that was probed
	Err     error  // Optional: underlying cause
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s %s: %s", e.Op, e.Library, kindSentinels[e.Kind])
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsKind reports whether err is an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" for unclassified errors.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
