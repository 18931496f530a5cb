// Package library defines the immutable request descriptor for an installed
// front-end library: its name, version constraint, entry-file override,
// minified-artifact hint, and content type. Defaults for the optional fields
// are applied at construction.
package library
