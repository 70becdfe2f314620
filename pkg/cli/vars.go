package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/geturit/urit/pkg/uritemplate"
)

// loadVarsFile reads variable bindings from a YAML (or JSON) file. The
// document must be a mapping of variable names to scalars, lists of
// scalars, or mappings of scalars. Decoding walks yaml.Node values
// directly so that nested mapping order is preserved; map-valued
// variables render positionally under several operators.
func loadVarsFile(path string) (*uritemplate.Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vars file: %w", err)
	}
	vars, err := parseVars(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vars, nil
}

func parseVars(data []byte) (*uritemplate.Variables, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vars file: %w", err)
	}
	vars := uritemplate.NewVariables()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return vars, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("vars file must be a mapping of variable names, got %s", kindName(root.Kind))
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch val.Kind {
		case yaml.ScalarNode:
			vars.Set(key.Value, val.Value)
		case yaml.SequenceNode:
			items := make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("variable %q: list items must be scalars", key.Value)
				}
				items = append(items, item.Value)
			}
			vars.SetList(key.Value, items...)
		case yaml.MappingNode:
			pairs := make([]uritemplate.Pair, 0, len(val.Content)/2)
			for j := 0; j+1 < len(val.Content); j += 2 {
				k, v := val.Content[j], val.Content[j+1]
				if v.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("variable %q: map values must be scalars", key.Value)
				}
				pairs = append(pairs, uritemplate.Pair{Key: k.Value, Value: v.Value})
			}
			vars.SetMap(key.Value, pairs...)
		default:
			return nil, fmt.Errorf("variable %q: unsupported value shape %s", key.Value, kindName(val.Kind))
		}
	}
	return vars, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

// applyVarFlags parses repeated -v name=value flags onto vars.
func applyVarFlags(vars *uritemplate.Variables, flags []string) error {
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid variable %q: expected name=value", f)
		}
		vars.Set(name, value)
	}
	return nil
}
