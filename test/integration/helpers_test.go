//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds ~/.libreg/config.yaml
	ProjectDir string // project with node_modules/
	GlobalDir  string // shared vendor directory, lower priority
}

// ProjectRoot is the project's node_modules directory.
func (e *testEnv) ProjectRoot() string { return filepath.Join(e.ProjectDir, "node_modules") }

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so no real configuration is read.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		GlobalDir:  t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("LIBREG_ROOTS", "")
	t.Setenv("LIBREG_LOG_LEVEL", "")
	viper.Reset()
	t.Cleanup(viper.Reset)

	return env
}

// setupLibraries installs a synthetic set of front-end libraries:
//
//	project: jquery 3.7.1 (main + min), bootstrap 5.3.3 (css only, no main)
//	global:  jquery 2.2.4, lodash 4.17.21
func setupLibraries(t *testing.T, env *testEnv) {
	t.Helper()

	project := env.ProjectRoot()
	writeFile(t, filepath.Join(project, "jquery", "package.json"),
		`{"name":"jquery","version":"3.7.1","main":"dist/jquery.js"}`)
	writeFile(t, filepath.Join(project, "jquery", "dist", "jquery.js"), jquerySource)
	writeFile(t, filepath.Join(project, "jquery", "dist", "jquery.min.js"), jqueryMin)

	writeFile(t, filepath.Join(project, "bootstrap", "package.json"),
		`{"name":"bootstrap","version":"5.3.3","style":"dist/css/bootstrap.css"}`)
	writeFile(t, filepath.Join(project, "bootstrap", "dist", "css", "bootstrap.css"), bootstrapCSS)

	global := env.GlobalDir
	writeFile(t, filepath.Join(global, "jquery", "package.json"),
		`{"name":"jquery","version":"2.2.4","main":"dist/jquery.js"}`)
	writeFile(t, filepath.Join(global, "jquery", "dist", "jquery.js"), "/* jquery 2 */")

	writeFile(t, filepath.Join(global, "lodash", "package.yaml"), "name: lodash\nversion: 4.17.21\nmain: lodash.js\n")
	writeFile(t, filepath.Join(global, "lodash", "lodash.js"), "var _ = {};\n")
}

const (
	jquerySource = "(function (global) {\n    // jQuery core\n    global.jQuery = function () {};\n})(window);\n"
	jqueryMin    = "!function(n){n.jQuery=function(){}}(window);"
	bootstrapCSS = ".btn {\n    display: inline-block;\n    color: #ffffff;\n}\n"
)

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileContains checks that a file contains the given substring.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}
