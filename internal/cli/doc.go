// Package cli defines the Cobra command tree for the libreg CLI. Each file
// registers one command (path, cat, min, list, check, config, version) on
// the root. Commands only parse flags, build a registry, and format output;
// resolution lives in the registry package.
package cli
