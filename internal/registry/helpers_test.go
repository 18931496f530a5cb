package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/libreg/internal/library"
)

const (
	jquerySource    = "(function (global) {\n    // jQuery\n    var version = \"3.7.1\";\n    global.jQuery = { version: version };\n})(window);\n"
	jqueryMinified  = "/*! jQuery v3.7.1 | (c) OpenJS Foundation */!function(e){e.jQuery={version:\"3.7.1\"}}(window);"
	bootstrapSource = ".btn {\n    display: inline-block;\n    padding: 0.375rem 0.75rem;\n    color: #ffffff;\n}\n"
)

// writeFile creates path (and its parents) with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newRoot builds a search root holding jquery 3.7.1 (main dist/jquery.js,
// plus dist/jquery.min.js) and bootstrap 5.3.3 (no main, css under dist/css).
func newRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "jquery", "package.json"),
		`{"name":"jquery","version":"3.7.1","main":"dist/jquery.js","license":"MIT"}`)
	writeFile(t, filepath.Join(root, "jquery", "dist", "jquery.js"), jquerySource)
	writeFile(t, filepath.Join(root, "jquery", "dist", "jquery.min.js"), jqueryMinified)

	writeFile(t, filepath.Join(root, "bootstrap", "package.json"),
		`{"name":"bootstrap","version":"5.3.3","style":"dist/css/bootstrap.css"}`)
	writeFile(t, filepath.Join(root, "bootstrap", "dist", "css", "bootstrap.css"), bootstrapSource)

	return root
}

func mustLib(t *testing.T, name string, opts ...library.Option) library.Library {
	t.Helper()
	lib, err := library.New(name, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func wantKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if !IsKind(err, kind) {
		t.Fatalf("error kind = %q, want %q (err: %v)", KindOf(err), kind, err)
	}
}
