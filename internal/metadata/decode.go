package metadata

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DecodeHeader deserializes a YAML header block into an untyped mapping. A
// blank header yields an empty mapping; malformed YAML is a FormatError.
func DecodeHeader(path, header string) (map[string]any, error) {
	raw := map[string]any{}
	if strings.TrimSpace(header) == "" {
		return raw, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return nil, &FormatError{Path: path, Field: "header", Err: err}
	}
	if doc.IsZero() {
		return raw, nil
	}
	if err := doc.Decode(&raw); err != nil {
		return nil, &FormatError{Path: path, Field: "header", Err: err}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	keepTimestampText(&doc, raw)
	return raw, nil
}

// keepTimestampText replaces top-level values yaml resolved as timestamps
// with their source text, so zone-less values pick up the builder location.
func keepTimestampText(doc *yaml.Node, raw map[string]any) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		for val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}
		if val.Kind != yaml.ScalarNode || val.ShortTag() != "!!timestamp" {
			continue
		}
		if _, ok := raw[key.Value]; ok {
			raw[key.Value] = val.Value
		}
	}
}

// FromRaw converts a decoded header into a Store. Null values are treated as
// absent keys; nested mappings and other non-scalar shapes are rejected.
func FromRaw(path string, raw map[string]any) (*Store, error) {
	store := NewStore()
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		v, err := toValue(raw[key])
		if err != nil {
			return nil, &FormatError{Path: path, Field: key, Value: raw[key], Err: err}
		}
		store.Set(key, v)
	}
	return store, nil
}

func toValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case bool:
		return Bool(v), nil
	case time.Time:
		return Timestamp{Time: v}, nil
	case []string:
		return StringList(slices.Clone(v)), nil
	case []any:
		list := make(StringList, 0, len(v))
		for _, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return nil, fmt.Errorf("%w: list item %T", ErrUnsupportedValue, item)
			}
			list = append(list, s)
		}
		return list, nil
	}
	if s, ok := scalarString(raw); ok {
		return String(s), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
}

func scalarString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}
