package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/orgchart/pkg/errors"
)

// DefaultPath is the roster file looked up when no path is given.
const DefaultPath = "roster.json"

// Format identifies a roster file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat converts a user-supplied format name into a Format.
// "yml" is accepted as an alias for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported roster format %q (must be json, yaml or toml)", s)
}

// FormatFromPath picks a format by file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// document is the wrapped form of a roster file. JSON and YAML rosters may
// also be a bare top-level list; TOML requires [[record]] tables.
type document struct {
	ContactRoster Roster `json:"contactRoster" yaml:"contactRoster" toml:"-"`
	Records       Roster `json:"-" yaml:"-" toml:"record"`
}

// Load reads the roster at path.
//
// If path is empty or names a file that does not exist, Load returns
// [Default]. Any other failure (unreadable file, malformed content) is
// returned as an INVALID_ROSTER error. Records are returned verbatim, in file
// order, with no schema validation.
func Load(path string) (Roster, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidRoster, err, "open %s", path)
	}
	defer f.Close()

	r, err := Read(f, FormatFromPath(path))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidRoster, err, "parse %s", path)
	}
	return r, nil
}

// Exists reports whether a roster file is present at path, which tells the
// caller whether [Load] will fall back to the built-in sample.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Read decodes a roster from r in the given format.
//
// JSON input may be a top-level array of records or an object carrying them
// under "contactRoster" (the shape of a browser localStorage export). YAML
// accepts the same two shapes. TOML input is a sequence of [[record]] tables.
//
// Read does not close r.
func Read(r io.Reader, format Format) (Roster, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	switch format {
	case FormatJSON, "":
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		var doc document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		return nonNil(doc.Records), nil
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported roster format %q", format)
}

func decodeJSON(data []byte) (Roster, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return nonNil(doc.ContactRoster), nil
	}

	var out Roster
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return nonNil(out), nil
}

func decodeYAML(data []byte) (Roster, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(node.Content) == 0 {
		return Roster{}, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return nonNil(doc.ContactRoster), nil
	}

	var out Roster
	if err := root.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return nonNil(out), nil
}

func nonNil(r Roster) Roster {
	if r == nil {
		return Roster{}
	}
	return r
}

// Write encodes roster to w. JSON and YAML are written as bare lists; TOML
// as [[record]] tables. The output can be read back with [Read].
func Write(w io.Writer, roster Roster, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(roster)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(roster)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(document{Records: roster}); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unsupported roster format %q", format)
}

// Export writes roster to path, choosing the format from its extension.
func Export(path string, roster Roster) error {
	var buf bytes.Buffer
	if err := Write(&buf, roster, FormatFromPath(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
