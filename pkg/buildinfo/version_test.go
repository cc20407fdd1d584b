package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func setVars(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, c, d
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestFill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	t.Run("defaults are replaced", func(t *testing.T) {
		setVars(t, "dev", "none", "unknown")
		fill(info)
		if Version != "v0.3.1" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
			t.Errorf("got %s %s %s", Version, Commit, Date)
		}
	})

	t.Run("ldflags win", func(t *testing.T) {
		setVars(t, "v1.0.0", "deadbeef", "2025-12-20")
		fill(info)
		if Version != "v1.0.0" || Commit != "deadbeef" || Date != "2025-12-20" {
			t.Errorf("got %s %s %s", Version, Commit, Date)
		}
	})

	t.Run("devel build keeps dev", func(t *testing.T) {
		setVars(t, "dev", "none", "unknown")
		fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		if Version != "dev" {
			t.Errorf("Version = %q, want dev", Version)
		}
	})
}

func TestGenerator(t *testing.T) {
	setVars(t, "v2.0.0", "none", "unknown")
	if got := Generator(); got != "orgchart v2.0.0" {
		t.Errorf("Generator() = %q", got)
	}
}

func TestTemplate(t *testing.T) {
	setVars(t, "v2.0.0", "abc", "today")
	tmpl := Template()
	for _, want := range []string{"{{.Name}} version v2.0.0", "commit: abc", "built: today"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, missing %q", tmpl, want)
		}
	}
}
