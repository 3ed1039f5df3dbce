package nested

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Branch is an insertion-ordered, string-keyed container. Children are
// *Branch nodes, []any sequences (pre-populated default lists before
// reconciliation, ordered sequences after), or scalar leaves.
//
// Branch instances are built fresh per submission and are not safe for
// concurrent mutation; independent submissions never share nodes.
type Branch struct {
	keys     []string
	children map[string]any
}

// NewBranch returns an empty Branch.
func NewBranch() *Branch {
	return &Branch{children: make(map[string]any)}
}

// Len reports the number of direct children.
func (b *Branch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns the child keys in first-insertion order.
func (b *Branch) Keys() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.keys...)
}

// Get returns the child stored under key.
func (b *Branch) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.children[key]
	return v, ok
}

// Set stores a child under key. A key that already exists keeps its original
// position; new keys append.
func (b *Branch) Set(key string, value any) {
	if _, ok := b.children[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.children[key] = value
}

// Child returns the Branch stored under key, creating and retaining an empty
// one when the key is missing. A non-Branch child is replaced; the last
// write wins, matching leaf overwrite semantics.
func (b *Branch) Child(key string) *Branch {
	if existing, ok := b.children[key]; ok {
		if br, isBranch := existing.(*Branch); isBranch {
			return br
		}
	}
	child := NewBranch()
	b.Set(key, child)
	return child
}

// Map converts the subtree into plain map[string]any / []any / scalar values
// for hand-off to validators that do not understand Branch nodes. Key order
// is lost; use Keys for order-sensitive consumers.
func (b *Branch) Map() map[string]any {
	if b == nil {
		return nil
	}
	out := make(map[string]any, len(b.keys))
	for _, key := range b.keys {
		out[key] = plainValue(b.children[key])
	}
	return out
}

func plainValue(v any) any {
	switch node := v.(type) {
	case *Branch:
		return node.Map()
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes the Branch as a JSON object preserving insertion order.
func (b *Branch) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(b.children[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
