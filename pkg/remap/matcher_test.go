package remap

import (
	"testing"

	"github.com/docforge/modmap/pkg/logging"
)

// TestMatcherCompile tests pattern compilation across config value types.
func TestMatcherCompile(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		enabled bool
	}{
		{"valid pattern", `modules/([^/]+)/`, true},
		{"valid pattern without group", `modules/[^/]+/`, true},
		{"invalid pattern", `modules/([unclosed`, false},
		{"integer value", 12, false},
		{"bool value", true, false},
		{"nil value", nil, false},
		{"slice value", []string{"modules/([^/]+)/"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)
			m := newMatcher(tt.value, tl.Logger)
			if m.enabled != tt.enabled {
				t.Errorf("newMatcher(%v) enabled = %v, want %v", tt.value, m.enabled, tt.enabled)
			}
		})
	}
}

// TestMatcherCompileLogging tests that only a failed compile warns. A
// non-string value disables matching without any warning.
func TestMatcherCompileLogging(t *testing.T) {
	tl := logging.NewTestLogger(t)

	newMatcher(12, tl.Logger)
	if tl.Contains("Invalid mapping pattern") {
		t.Errorf("non-string value warned about compilation:\n%s", tl.Output())
	}

	tl.Clear()
	newMatcher(`([bad`, tl.Logger)
	tl.AssertContains(t, "Invalid mapping pattern")
}

// TestMatcherMatch tests logical name extraction from file paths.
func TestMatcherMatch(t *testing.T) {
	tl := logging.NewTestLogger(t)
	m := newMatcher(`modules/([^/]+)/`, tl.Logger)

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{"basic match", "/work/modules/core/index.ts", "core", true},
		{"nested file", "/work/modules/auth/internal/token.ts", "auth", true},
		{"first occurrence wins", "/work/modules/outer/modules/inner/x.ts", "outer", true},
		{"no match", "/work/lib/core/index.ts", "", false},
		{"directory itself", "/work/modules/core", "", false},
		{"empty path", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.match(tt.path)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("match(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestMatcherNoCaptureGroup tests that a pattern without a capture group
// never yields a name, even when the pattern itself matches.
func TestMatcherNoCaptureGroup(t *testing.T) {
	tl := logging.NewTestLogger(t)
	m := newMatcher(`modules/[^/]+/`, tl.Logger)

	name, ok := m.match("/work/modules/core/index.ts")
	if ok || name != "" {
		t.Errorf("match() = (%q, %v), want no match for groupless pattern", name, ok)
	}
}

// TestMatcherEmptyCapture tests that an empty first capture still counts
// as a match.
func TestMatcherEmptyCapture(t *testing.T) {
	tl := logging.NewTestLogger(t)
	m := newMatcher(`modules/([0-9]*)[a-z]+/`, tl.Logger)

	name, ok := m.match("/work/modules/core/index.ts")
	if !ok || name != "" {
		t.Errorf("match() = (%q, %v), want empty name with a match", name, ok)
	}
}

// TestMatcherDisabledNeverMatches tests the disabled matcher short-circuit.
func TestMatcherDisabledNeverMatches(t *testing.T) {
	tl := logging.NewTestLogger(t)
	m := newMatcher(nil, tl.Logger)

	if name, ok := m.match("/work/modules/core/index.ts"); ok || name != "" {
		t.Errorf("disabled matcher matched: (%q, %v)", name, ok)
	}
}
