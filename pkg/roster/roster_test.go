package roster

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/orgchart/pkg/errors"
)

func TestDefault(t *testing.T) {
	r := Default()

	if len(r) != 10 {
		t.Fatalf("len(Default()) = %d, want 10", len(r))
	}
	if r[0].ID != "cmd-dro" || r[0].Title != "DRO Director" {
		t.Errorf("first record = %+v, want id cmd-dro, title DRO Director", r[0])
	}
	if r[0].ReportsTo != "" {
		t.Errorf("root record ReportsTo = %q, want empty", r[0].ReportsTo)
	}
	if got := r.Filled(); got != 10 {
		t.Errorf("Filled() = %d, want 10", got)
	}

	// Mutating one copy must not leak into the next call.
	r[0].Name = ""
	if Default()[0].Name == "" {
		t.Error("Default() returned shared backing storage")
	}
}

func TestDefaultReferencesResolve(t *testing.T) {
	r := Default()
	for _, rec := range r {
		if rec.ReportsTo == "" {
			continue
		}
		if _, ok := r.Lookup(rec.ReportsTo); !ok {
			t.Errorf("record %s reports to unknown id %s", rec.ID, rec.ReportsTo)
		}
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "roster.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(r) != 10 || r[0].ID != "cmd-dro" {
		t.Errorf("Load() of missing file did not return default roster: %d records", len(r))
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	r, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(r) != 10 {
		t.Errorf("len = %d, want 10", len(r))
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json array",
			file: "roster.json",
			content: `[
  {"id": "a", "title": "Director", "name": "Ada", "category": "Command"},
  {"id": "b", "title": "Deputy", "name": "Bo", "category": "Operations", "reportsTo": "a"}
]`,
		},
		{
			name: "json localStorage export",
			file: "export.json",
			content: `{"contactRoster": [
  {"id": "a", "title": "Director", "name": "Ada", "category": "Command"},
  {"id": "b", "title": "Deputy", "name": "Bo", "category": "Operations", "reportsTo": "a"}
]}`,
		},
		{
			name: "yaml list",
			file: "roster.yaml",
			content: `- id: a
  title: Director
  name: Ada
  category: Command
- id: b
  title: Deputy
  name: Bo
  category: Operations
  reportsTo: a
`,
		},
		{
			name: "yml mapping",
			file: "roster.yml",
			content: `contactRoster:
  - {id: a, title: Director, name: Ada, category: Command}
  - {id: b, title: Deputy, name: Bo, category: Operations, reportsTo: a}
`,
		},
		{
			name: "toml tables",
			file: "roster.toml",
			content: `[[record]]
id = "a"
title = "Director"
name = "Ada"
category = "Command"

[[record]]
id = "b"
title = "Deputy"
name = "Bo"
category = "Operations"
reportsTo = "a"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			r, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if len(r) != 2 {
				t.Fatalf("len = %d, want 2", len(r))
			}
			if r[0].ID != "a" || r[0].Name != "Ada" {
				t.Errorf("r[0] = %+v", r[0])
			}
			if r[1].ReportsTo != "a" || r[1].Category != "Operations" {
				t.Errorf("r[1] = %+v", r[1])
			}
		})
	}
}

func TestLoadKeepsIncompleteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	content := `[{"title": "Vacant"}, {"id": "x", "name": "No Title"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(r) != 2 {
		t.Fatalf("len = %d, want 2", len(r))
	}
	if r[0].ID != "" || r[0].Filled() {
		t.Errorf("r[0] = %+v, want empty id and no name", r[0])
	}
	if r[1].Title != "" {
		t.Errorf("r[1].Title = %q, want empty", r[1].Title)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"roster.json", `[{"id": "a",`},
		{"roster.json", `"just a string"`},
		{"roster.yaml", "- id: [unterminated"},
		{"roster.toml", "[[record]\nid = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error for malformed content")
			}
			if !errs.Is(err, errs.ErrCodeInvalidRoster) {
				t.Errorf("Load() error code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidRoster)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q should mention path", err)
			}
		})
	}
}

func TestLoadDirectoryFails(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errs.Is(err, errs.ErrCodeInvalidRoster) {
		t.Errorf("Load(dir) error = %v, want INVALID_ROSTER", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, Default(), format); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			got, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			want := Default()
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := Export(path, Default()); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Export() did not create file")
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(r) != 10 {
		t.Errorf("len = %d, want 10", len(r))
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"roster.json":  FormatJSON,
		"roster.YAML":  FormatYAML,
		"roster.yml":   FormatYAML,
		"roster.toml":  FormatTOML,
		"roster":       FormatJSON,
		"dir/r.backup": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
