package nested

import (
	"errors"
	"strconv"

	"github.com/goliatone/go-formdecode/pkg/keypath"
)

// Builder accumulates (path, value) pairs for one submission into a single
// root Branch. Paths may arrive in any order; segments within one path are
// applied in order. The object-versus-list decision is deferred to Reconcile.
type Builder struct {
	root *Branch
}

// NewBuilder returns a Builder with an empty root.
func NewBuilder() *Builder {
	return &Builder{root: NewBranch()}
}

// Root exposes the accumulated tree.
func (b *Builder) Root() *Branch {
	return b.root
}

// Insert walks all but the last segment, fetching or creating a child Branch
// at each step, then sets the last segment to the supplied value. Repeated
// inserts at the same path overwrite: the last write wins.
//
// Digit segments inserted into an index-shaped Branch pre-fill any missing
// lower indices with placeholders so index growth stays contiguous from
// zero. A value that is itself a []any (a pre-populated default list) is
// grown the same way when a later path indexes into it.
func (b *Builder) Insert(path keypath.Path, value any) error {
	if len(path) == 0 {
		return errors.New("nested: empty path")
	}
	return insertBranch(b.root, path, value, nil)
}

func insertBranch(br *Branch, path keypath.Path, value any, trail []string) error {
	seg := path[0]

	if len(path) == 1 {
		if isDigits(seg) && indexShaped(br) {
			fillIndices(br, seg, func() any { return placeholderFor(value) })
		}
		br.Set(seg, value)
		return nil
	}

	child, ok := br.Get(seg)
	if !ok {
		if isDigits(seg) && indexShaped(br) {
			fillIndices(br, seg, containerPlaceholder(path[1]))
		}
		next := NewBranch()
		br.Set(seg, next)
		return insertBranch(next, path[1:], value, append(trail, seg))
	}

	switch node := child.(type) {
	case *Branch:
		return insertBranch(node, path[1:], value, append(trail, seg))
	case []any:
		grown, err := insertList(node, path[1:], value, append(trail, seg))
		if err != nil {
			return err
		}
		br.Set(seg, grown)
		return nil
	default:
		// A scalar sat where the path needs a container; the later, deeper
		// write wins, mirroring leaf overwrite semantics.
		next := NewBranch()
		br.Set(seg, next)
		return insertBranch(next, path[1:], value, append(trail, seg))
	}
}

func insertList(list []any, path keypath.Path, value any, trail []string) ([]any, error) {
	seg := path[0]
	idx, err := strconv.Atoi(seg)
	if err != nil || !isDigits(seg) {
		return nil, MalformedIndexError{Path: joinTrail(trail), Segment: seg}
	}

	if len(path) == 1 {
		for len(list) <= idx {
			list = append(list, placeholderFor(value))
		}
		list[idx] = value
		return list, nil
	}

	mk := containerPlaceholder(path[1])
	for len(list) <= idx {
		list = append(list, mk())
	}

	childTrail := append(trail, seg)
	switch node := list[idx].(type) {
	case *Branch:
		return list, insertBranch(node, path[1:], value, childTrail)
	case []any:
		grown, err := insertList(node, path[1:], value, childTrail)
		if err != nil {
			return nil, err
		}
		list[idx] = grown
		return list, nil
	default:
		if isDigits(path[1]) {
			grown, err := insertList(nil, path[1:], value, childTrail)
			if err != nil {
				return nil, err
			}
			list[idx] = grown
			return list, nil
		}
		next := NewBranch()
		list[idx] = next
		return list, insertBranch(next, path[1:], value, childTrail)
	}
}

// indexShaped reports whether every existing key is a decimal index string.
// An empty Branch is index shaped; the first insert decides its nature.
func indexShaped(br *Branch) bool {
	for _, key := range br.keys {
		if !isDigits(key) {
			return false
		}
	}
	return true
}

// fillIndices creates placeholder children for every index below seg that is
// not present yet, keeping growth contiguous from zero.
func fillIndices(br *Branch, seg string, mk func() any) {
	idx, err := strconv.Atoi(seg)
	if err != nil {
		return
	}
	for i := 0; i < idx; i++ {
		key := strconv.Itoa(i)
		if _, ok := br.Get(key); !ok {
			br.Set(key, mk())
		}
	}
}

// containerPlaceholder picks the placeholder constructor for intermediate
// slots: the next segment decides whether the slot holds a nested list or an
// object, mirroring how submitted paths will address it.
func containerPlaceholder(next string) func() any {
	if isDigits(next) {
		return func() any { return []any{} }
	}
	return func() any { return NewBranch() }
}

// placeholderFor returns an empty value of the same shape as v, used to pad
// list slots below a submitted index.
func placeholderFor(v any) any {
	switch v.(type) {
	case string:
		return ""
	case bool:
		return false
	case int:
		return 0
	case int64:
		return int64(0)
	case float64:
		return float64(0)
	case []any:
		return []any{}
	case *Branch:
		return NewBranch()
	case map[string]any:
		return map[string]any{}
	default:
		return nil
	}
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
