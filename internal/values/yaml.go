package values

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a document root is not a YAML mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Parse decodes a YAML document whose root must be a mapping.
// An empty document yields an empty Map.
func Parse(data []byte) (*Map, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case nil:
		return New(), nil
	case *Map:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, TypeName(v))
	}
}

// Decode decodes any YAML document into the value model of this package.
func Decode(data []byte) (any, error) {
	var node yaml.Node

	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return fromNode(&node)
}

// Marshal encodes v as block-style YAML with two-space indentation.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, keeping key order.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := fromNode(node)
	if err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*m = *New()
	case *Map:
		*m = *t
	default:
		return fmt.Errorf("%w: got %s", ErrNotMapping, TypeName(v))
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping key order.
func (m *Map) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range m.All() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(v); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		out.Content = append(out.Content, keyNode, valueNode)
	}

	return out, nil
}

func fromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil

	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return fromNode(node.Content[0])

	case yaml.AliasNode:
		return fromNode(node.Alias)

	case yaml.MappingNode:
		return fromMapping(node)

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return normalizeScalar(v), nil

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %v", node.Line, node.Kind)
	}
}

// fromMapping builds a Map from a mapping node, flattening merge keys
// ("<<"). Merged keys come first; keys written in the mapping itself win, and
// among merged sources the earlier one wins.
func fromMapping(node *yaml.Node) (*Map, error) {
	merged := New()
	explicit := New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		if keyNode.ShortTag() == mergeTag {
			if err := mergeInto(merged, valueNode); err != nil {
				return nil, err
			}

			continue
		}

		v, err := fromNode(valueNode)
		if err != nil {
			return nil, err
		}

		explicit.Set(keyNode.Value, v)
	}

	for k, v := range explicit.All() {
		merged.Set(k, v)
	}

	return merged, nil
}

const mergeTag = "!!merge"

// mergeInto adds the keys of a merge source to dst, skipping keys dst
// already holds. The source is a mapping, an alias to one, or a sequence of
// those.
func mergeInto(dst *Map, node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		for _, item := range node.Content {
			if err := mergeInto(dst, item); err != nil {
				return err
			}
		}

		return nil
	}

	v, err := fromNode(node)
	if err != nil {
		return err
	}

	src, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("line %d: merge key expects a mapping, got %s", node.Line, TypeName(v))
	}

	for k, sv := range src.All() {
		if !dst.Has(k) {
			dst.Set(k, sv)
		}
	}

	return nil
}

// normalizeScalar folds the integer widths yaml.v3 may produce into int.
// Unsigned values that do not fit stay uint64.
func normalizeScalar(v any) any {
	switch t := v.(type) {
	case int64:
		return int(t)
	case uint64:
		if t > math.MaxInt64 {
			return t
		}

		return int(t)
	default:
		return v
	}
}

// TypeName returns the name used in diagnostics for the dynamic type of v.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "list"
	case *Map, map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
