// Package manifest reads the package descriptor (package.json, or
// package.yaml as written by pnpm) of an installed library. Only the
// version and main entry are interpreted; every other field is passed
// through untouched. Validate checks field presence against an embedded
// JSON schema.
package manifest
