package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docforge/modmap/pkg/logging"
	"github.com/docforge/modmap/pkg/reflection"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("export {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testCtx() context.Context {
	return logging.WithLogger(context.Background(), logging.NewNopLogger())
}

func moduleNames(p *reflection.Project) []string {
	names := make([]string, 0, p.Len())
	for _, r := range p.List() {
		names = append(names, r.Name)
	}
	return names
}

// TestTreeDiscoversSourceFiles tests the default walk: matching files
// become root modules in lexical order, skip dirs and other files do not.
func TestTreeDiscoversSourceFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "app.ts"))
	touch(t, filepath.Join(root, "readme.md"))
	touch(t, filepath.Join(root, "node_modules", "dep.ts"))
	touch(t, filepath.Join(root, "src", "core", "index.ts"))
	touch(t, filepath.Join(root, "src", "core", "util.tsx"))

	p, err := New().Tree(testCtx(), root)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "app.ts"),
		filepath.Join(root, "src", "core", "index.ts"),
		filepath.Join(root, "src", "core", "util.tsx"),
	}
	if diff := cmp.Diff(want, moduleNames(p)); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}

	for _, r := range p.List() {
		if r.Kind != reflection.KindModule {
			t.Errorf("%s kind = %q, want module", r.Name, r.Kind)
		}
		if r.Parent != reflection.None {
			t.Errorf("%s parent = %d, want root", r.Name, r.Parent)
		}
		if !filepath.IsAbs(r.OriginalName) {
			t.Errorf("%s original name not absolute", r.OriginalName)
		}
	}
}

// TestTreeCustomSkipDirs tests that configured skip dirs replace the
// defaults.
func TestTreeCustomSkipDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "vendor", "lib.ts"))
	touch(t, filepath.Join(root, "node_modules", "dep.ts"))

	p, err := New(WithSkipDirs("vendor")).Tree(testCtx(), root)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}

	want := []string{filepath.Join(root, "node_modules", "dep.ts")}
	if diff := cmp.Diff(want, moduleNames(p)); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

// TestTreeCustomExtensions tests extension overrides and dot
// normalization.
func TestTreeCustomExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "main.go"))
	touch(t, filepath.Join(root, "app.ts"))

	p, err := New(WithExtensions("go")).Tree(testCtx(), root)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}

	want := []string{filepath.Join(root, "main.go")}
	if diff := cmp.Diff(want, moduleNames(p)); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

// TestTreeExtensionCase tests case-insensitive extension matching.
func TestTreeExtensionCase(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "APP.TS"))

	p, err := New().Tree(testCtx(), root)
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

// TestTreeMissingRoot tests the error path for an absent directory.
func TestTreeMissingRoot(t *testing.T) {
	_, err := New().Tree(testCtx(), filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("Tree() succeeded on a missing root")
	}
}
