package decode

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formdecode/pkg/keypath"
	"github.com/goliatone/go-formdecode/pkg/nested"
)

// Flatten is the inverse of Decode for trees of objects, sequences, and
// scalar leaves: it encodes every leaf location as a bracket-path key under
// prefix. Feeding the result back through Decode reproduces the tree.
// Renderers use this to pre-fill a form widget from an existing value.
func Flatten(root *nested.Branch, prefix string) []Field {
	if prefix == "" {
		prefix = keypath.DefaultPrefix
	}
	var out []Field
	for _, key := range root.Keys() {
		child, _ := root.Get(key)
		out = flattenValue(out, prefix+"["+key+"]", child)
	}
	return out
}

func flattenValue(out []Field, key string, v any) []Field {
	switch node := v.(type) {
	case *nested.Branch:
		if node.Len() == 0 {
			return out
		}
		for _, childKey := range node.Keys() {
			child, _ := node.Get(childKey)
			out = flattenValue(out, key+"["+childKey+"]", child)
		}
		return out
	case []any:
		for i, item := range node {
			out = flattenValue(out, key+"["+strconv.Itoa(i)+"]", item)
		}
		return out
	case map[string]any:
		// Plain maps flatten too, but without a stable key order; prefer
		// Branch trees when order matters.
		for childKey, child := range node {
			out = flattenValue(out, key+"["+childKey+"]", child)
		}
		return out
	default:
		return append(out, Field{Key: key, Value: v})
	}
}

// FlattenStrings renders a flattened submission with stringified values, the
// shape a real form post delivers.
func FlattenStrings(root *nested.Branch, prefix string) []Field {
	fields := Flatten(root, prefix)
	for i, field := range fields {
		fields[i].Value = fmt.Sprint(field.Value)
	}
	return fields
}
