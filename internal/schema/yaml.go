package schema

import (
	"os"

	"github.com/arborio/atree/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlDef mirrors AttributeDef's shape for decoding; AttributeKind
// round-trips through its name rather than its int tag so fixtures stay
// readable and stable across reordering the AttributeKind const block.
type yamlDef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

var kindByName = map[string]AttributeKind{
	"bool":        Bool,
	"int":         Int,
	"float":       Float,
	"string":      String,
	"bool_list":   BoolList,
	"int_list":    IntList,
	"float_list":  FloatList,
	"string_list": StringList,
}

// LoadDefsYAML parses a list of {name, kind} attribute definitions from
// YAML bytes. This is fixture-loading for tests and examples, not rule
// parsing: the rules themselves are still built as ExprTrees in Go,
// never from text (spec Non-goals).
func LoadDefsYAML(data []byte) ([]AttributeDef, error) {
	var raw []yamlDef
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapYAMLError(err)
	}
	defs := make([]AttributeDef, 0, len(raw))
	for _, r := range raw {
		kind, ok := kindByName[r.Kind]
		if !ok {
			return nil, errors.NewInvalidExpression("unknown attribute kind in fixture: " + r.Kind)
		}
		defs = append(defs, AttributeDef{Name: r.Name, Kind: kind})
	}
	return defs, nil
}

// LoadDefsYAMLFile reads and parses a schema fixture file.
func LoadDefsYAMLFile(path string) ([]AttributeDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIOError(err)
	}
	return LoadDefsYAML(data)
}
