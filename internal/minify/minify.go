package minify

import (
	"fmt"

	tdminify "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"

	"github.com/agentx-labs/libreg/internal/library"
)

// Minifier turns source text into a size-reduced equivalent.
type Minifier interface {
	Minify(src string) (string, error)
}

// Func adapts a plain function to the Minifier interface.
type Func func(src string) (string, error)

// Minify calls f(src).
func (f Func) Minify(src string) (string, error) { return f(src) }

// mediaMinifier runs a single media type through a shared tdewolff instance.
type mediaMinifier struct {
	m         *tdminify.M
	mediaType string
}

func (mm mediaMinifier) Minify(src string) (string, error) {
	out, err := mm.m.String(mm.mediaType, src)
	if err != nil {
		return "", fmt.Errorf("minifying %s: %w", mm.mediaType, err)
	}
	return out, nil
}

var shared = newM()

func newM() *tdminify.M {
	m := tdminify.New()
	m.AddFunc(library.JavaScript.MediaType(), js.Minify)
	m.AddFunc(library.Stylesheet.MediaType(), css.Minify)
	return m
}

// JavaScript returns the JavaScript minifier.
func JavaScript() Minifier {
	return mediaMinifier{m: shared, mediaType: library.JavaScript.MediaType()}
}

// Stylesheet returns the CSS minifier.
func Stylesheet() Minifier {
	return mediaMinifier{m: shared, mediaType: library.Stylesheet.MediaType()}
}

// Set holds one minifier per content type.
type Set struct {
	JavaScript Minifier
	Stylesheet Minifier
}

// Default returns the tdewolff-backed minifiers.
func Default() Set {
	return Set{JavaScript: JavaScript(), Stylesheet: Stylesheet()}
}

// For returns the minifier registered for ct.
func (s Set) For(ct library.ContentType) (Minifier, error) {
	var m Minifier
	switch ct {
	case library.Stylesheet:
		m = s.Stylesheet
	default:
		m = s.JavaScript
	}
	if m == nil {
		return nil, fmt.Errorf("no minifier configured for %s", ct)
	}
	return m, nil
}
