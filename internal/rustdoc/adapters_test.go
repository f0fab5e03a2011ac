package rustdoc

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fixtureJSON builds a minimal but complete document for one format version.
// The only version-dependent part a test exercises is the function header
// flag spelling, which changed at 48.
func fixtureJSON(version int) []byte {
	header := `"is_const": true, "is_async": false, "is_unsafe": true`
	if version == 46 {
		header = `"const": true, "async": false, "unsafe": true`
	}
	return fmt.Appendf(nil, `{
 "root": 0,
 "crate_version": "0.9.1",
 "format_version": %d,
 "index": {
  "0": {"name": "mycrate", "visibility": "public", "docs": "Top docs.", "inner": {"module": {"is_crate": true, "items": [1, 2, 3, 4, 5, 6]}}},
  "1": {"name": "Foo", "visibility": "public", "docs": "A foo.", "inner": {"struct": {"kind": {"plain": {"fields": []}}, "impls": [20]}}},
  "2": {"name": "Color", "visibility": "public", "inner": {"enum": {"variants": [10, 11], "impls": []}}},
  "3": {"name": "run", "visibility": "public", "inner": {"function": {"header": {%s}}}},
  "4": {"name": "Runner", "visibility": "public", "inner": {"trait": {"is_auto": false, "is_unsafe": true, "items": [13, 14]}}},
  "5": {"name": "MAX", "visibility": "public", "inner": {"constant": {"type": {}, "const": {}}}},
  "6": {"name": "Hidden", "visibility": "crate", "inner": {"struct": {"kind": "unit", "impls": []}}}
 },
 "paths": {
  "1": {"crate_id": 0, "path": ["mycrate", "Foo"], "kind": "struct"},
  "4": {"crate_id": 0, "path": ["mycrate", "Runner"], "kind": "trait"}
 }
}`, version, header)
}

func TestAdapters_ParseAndSummarize(t *testing.T) {
	t.Parallel()

	for _, version := range SupportedVersions() {
		t.Run(fmt.Sprintf("v%d", version), func(t *testing.T) {
			t.Parallel()

			raw := fixtureJSON(version)
			c, err := Parse(raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if c.SchemaVersion != version {
				t.Errorf("SchemaVersion = %d, want %d", c.SchemaVersion, version)
			}

			got, err := Summarize(c)
			if err != nil {
				t.Fatalf("Summarize: %v", err)
			}
			for _, want := range []string{
				"# Crate: mycrate v0.9.1",
				"## Documentation\nTop docs.",
				"## Structs\n- **Foo**: A foo.",
				"## Enums\n- **Color**",
				"## Traits\n- **Runner**",
				"## Functions\n- **run**",
			} {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in %q", want, got)
				}
			}
			if strings.Contains(got, "Hidden") {
				t.Errorf("crate-visible struct leaked into summary: %q", got)
			}
			if strings.Contains(got, "MAX") {
				t.Errorf("constant listed in a category: %q", got)
			}
		})
	}
}

func TestAdapters_DescribeFunction(t *testing.T) {
	t.Parallel()

	for _, version := range SupportedVersions() {
		got, err := DescribeBytes(fixtureJSON(version), "fn.run")
		if err != nil {
			t.Fatalf("v%d: %v", version, err)
		}
		if !strings.Contains(got, "**Attributes:** const, unsafe") {
			t.Errorf("v%d: function flags not projected: %q", version, got)
		}
	}
}

func TestAdapters_PathKindOverride(t *testing.T) {
	t.Parallel()

	got, err := DescribeBytes(fixtureJSON(53), "Runner")
	if err != nil {
		t.Fatalf("DescribeBytes: %v", err)
	}
	for _, want := range []string{"# Runner", "**Type:** Trait", "**Attributes:** unsafe", "**Items:** 2 associated item(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestAdapters_RootMissing(t *testing.T) {
	t.Parallel()

	for _, version := range SupportedVersions() {
		raw := []byte(strings.Replace(string(fixtureJSON(version)), `"root": 0`, `"root": 99`, 1))
		_, err := SummarizeBytes(raw)
		var rerr *RootNotFoundError
		if !errors.As(err, &rerr) {
			t.Fatalf("v%d: expected *RootNotFoundError, got %v", version, err)
		}
		if !strings.Contains(err.Error(), "99") {
			t.Errorf("v%d: error does not name the missing id: %v", version, err)
		}
	}
}

func TestAdapters_SchemaMismatch(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"index wrong type":   `{"format_version": %d, "root": 0, "index": 5, "paths": {}}`,
		"missing root":       `{"format_version": %d, "index": {}, "paths": {}}`,
		"missing paths":      `{"format_version": %d, "root": 0, "index": {}}`,
		"visibility invalid": `{"format_version": %d, "root": 0, "paths": {}, "index": {"0": {"name": "x", "visibility": 3, "inner": {"module": {"items": []}}}}}`,
	}
	for name, tmpl := range cases {
		for _, version := range SupportedVersions() {
			raw := fmt.Appendf(nil, tmpl, version)
			_, err := Parse(raw)
			var merr *SchemaMismatchError
			if !errors.As(err, &merr) {
				t.Fatalf("%s v%d: expected *SchemaMismatchError, got %v", name, version, err)
			}
			if merr.Version != version {
				t.Errorf("%s: mismatch error names version %d, want %d", name, merr.Version, version)
			}
		}
	}
}

func TestParse_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`{"format_version": 47, "root": 0, "index": {}, "paths": {}}`))
	var uerr *UnsupportedVersionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnsupportedVersionError, got %v", err)
	}
}
