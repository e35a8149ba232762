package schema

import (
	"os"
	"path/filepath"
	"testing"
)

const fixtureYAML = `
- name: status
  kind: string
- name: amount
  kind: int
- name: tags
  kind: string_list
`

func TestLoadDefsYAML(t *testing.T) {
	defs, err := LoadDefsYAML([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("LoadDefsYAML: %v", err)
	}
	want := []AttributeDef{
		{Name: "status", Kind: String},
		{Name: "amount", Kind: Int},
		{Name: "tags", Kind: StringList},
	}
	if len(defs) != len(want) {
		t.Fatalf("LoadDefsYAML returned %d defs, want %d", len(defs), len(want))
	}
	for i, d := range defs {
		if d != want[i] {
			t.Errorf("defs[%d] = %+v, want %+v", i, d, want[i])
		}
	}

	if _, err := New(defs); err != nil {
		t.Fatalf("schema.New(defs loaded from YAML): %v", err)
	}
}

func TestLoadDefsYAMLUnknownKind(t *testing.T) {
	_, err := LoadDefsYAML([]byte("- name: bogus\n  kind: nonexistent\n"))
	if err == nil {
		t.Fatal("expected an error for an unrecognized kind name")
	}
}

func TestLoadDefsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	defs, err := LoadDefsYAMLFile(path)
	if err != nil {
		t.Fatalf("LoadDefsYAMLFile: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("LoadDefsYAMLFile returned %d defs, want 3", len(defs))
	}
}

func TestLoadDefsYAMLFileMissing(t *testing.T) {
	if _, err := LoadDefsYAMLFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing fixture file")
	}
}
