// Package minify wraps the tdewolff JavaScript and CSS minifiers behind a
// small text-to-text interface so the registry can synthesize minified
// variants of libraries that do not ship one.
package minify
