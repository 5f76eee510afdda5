package modmap

import (
	"context"
	"testing"
	"time"

	"github.com/docforge/modmap/pkg/logging"
	"github.com/docforge/modmap/pkg/reflection"
)

// testPattern groups source files by the directory under src.
const testPattern = `^.*/src/([^/]+)/`

// testProject builds a tree the way an analyzer would, one module per
// source file named by its absolute path.
func testProject() *reflection.Project {
	p := reflection.NewProject()
	core := p.Create(reflection.KindModule, "/work/src/core/index.ts", reflection.None)
	p.Create(reflection.KindFunction, "start", core.ID)
	util := p.Create(reflection.KindModule, "/work/src/core/util.ts", reflection.None)
	p.Create(reflection.KindFunction, "helper", util.ID)
	p.Create(reflection.KindModule, "/work/src/extras/index.ts", reflection.None)
	p.Create(reflection.KindModule, "helpers", reflection.None)
	p.Create(reflection.KindNamespace, "/work/src/core/space.ts", reflection.None)
	return p
}

// TestNew verifies construction and the empty pre-run state.
func TestNew(t *testing.T) {
	logging.DisableLoggingForTest(t)

	m, err := New(WithProject(testProject()), WithPattern(testPattern))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if m.Project() != nil {
		t.Error("Project() before any run, want nil")
	}
	if m.Result() != nil {
		t.Error("Result() before any run, want nil")
	}
}

// TestNewOptionErrors verifies option validation at construction.
func TestNewOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty root", WithRoot("")},
		{"empty tree file", WithTreeFile("")},
		{"nil project", WithProject(nil)},
		{"empty readme name", WithReadmeName("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatal("New() error = nil, want validation error")
			}
		})
	}
}

// TestNewRejectsBadRefreshInterval verifies auto-refresh cannot start
// with a non-positive interval.
func TestNewRejectsBadRefreshInterval(t *testing.T) {
	_, err := New(
		WithProject(testProject()),
		WithAutoRefresh(true),
		WithRefreshInterval(-time.Second),
	)
	if err == nil {
		t.Fatal("New() error = nil, want validation error")
	}
}

// TestProjectIsCopy verifies mutations of an accessed tree never leak
// back into the mapper.
func TestProjectIsCopy(t *testing.T) {
	logging.DisableLoggingForTest(t)

	m, err := New(WithProject(testProject()), WithPattern(testPattern))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := m.Project()
	for _, root := range got.Roots() {
		root.Name = "mutated"
	}

	for _, root := range m.Project().Roots() {
		if root.Name == "mutated" {
			t.Fatal("mutation of accessed tree leaked into the mapper")
		}
	}
}

// TestResultIsCopy verifies mutations of an accessed result never leak
// back into the mapper.
func TestResultIsCopy(t *testing.T) {
	logging.DisableLoggingForTest(t)

	m, err := New(WithProject(testProject()), WithPattern(testPattern))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := m.Result()
	got.Packages[0].Name = "mutated"
	got.FilesMatched = -1

	again := m.Result()
	if again.Packages[0].Name == "mutated" || again.FilesMatched == -1 {
		t.Fatal("mutation of accessed result leaked into the mapper")
	}
}

// TestProvidedProjectNotMutated verifies the caller's arena survives
// runs untouched.
func TestProvidedProjectNotMutated(t *testing.T) {
	logging.DisableLoggingForTest(t)

	source := testProject()
	m, err := New(WithProject(source), WithPattern(testPattern))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if source.Len() != 7 {
		t.Errorf("source project Len() = %d, want 7", source.Len())
	}
	first, ok := source.Get(1)
	if !ok || first.Name != "/work/src/core/index.ts" {
		t.Errorf("source project was renamed: %+v", first)
	}
}

// TestRefreshLifecycle verifies the auto-refresh loop runs the pipeline
// and can be stopped repeatedly.
func TestRefreshLifecycle(t *testing.T) {
	logging.DisableLoggingForTest(t)

	m, err := New(
		WithProject(testProject()),
		WithPattern(testPattern),
		WithRefreshInterval(10*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := m.RefreshOn(); err != nil {
		t.Fatalf("RefreshOn() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for m.Result() == nil && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if m.Result() == nil {
		t.Fatal("auto-refresh never completed a run")
	}

	if err := m.RefreshOff(); err != nil {
		t.Fatalf("RefreshOff() error = %v", err)
	}
	if err := m.RefreshOff(); err != nil {
		t.Fatalf("second RefreshOff() error = %v", err)
	}
}
