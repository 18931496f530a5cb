// Package registry resolves library requests against installed packages.
// A LocalRegistry searches an ordered list of root directories for a
// library's directory, reads its package descriptor, checks the installed
// version against the requested range, and returns the entry file or a
// minified variant, synthesizing one with the matching minifier when the
// caller did not name a pre-built artifact.
//
// Nothing is cached: every call re-reads the filesystem.
package registry
