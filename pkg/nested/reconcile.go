package nested

import (
	"fmt"
	"sort"
	"strconv"
)

// Reconcile converts every Branch whose keys are all decimal index strings
// into an ordered []any sequence, recursively and bottom-up. Branches with
// at least one non-index key stay objects with their children reconciled in
// place. Pre-populated []any leaves are reconciled element-wise so mixed
// dict/list nesting normalizes uniformly. The pass is idempotent: sequences
// are never re-interpreted as Branches.
func Reconcile(v any) (any, error) {
	return reconcileValue(v, nil)
}

func reconcileValue(v any, trail []string) (any, error) {
	switch node := v.(type) {
	case *Branch:
		return reconcileBranch(node, trail)
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			r, err := reconcileValue(item, append(trail, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

func reconcileBranch(br *Branch, trail []string) (any, error) {
	if br.Len() == 0 {
		return br, nil
	}

	keys := br.Keys()
	var indexKey, fieldKey string
	for _, key := range keys {
		if isDigits(key) {
			indexKey = key
		} else {
			fieldKey = key
		}
	}
	if indexKey != "" && fieldKey != "" {
		return nil, AmbiguousStructureError{
			Path:     joinTrail(trail),
			IndexKey: indexKey,
			FieldKey: fieldKey,
		}
	}

	if fieldKey != "" {
		// Genuine object: reconcile children in place, order preserved.
		for _, key := range keys {
			child, _ := br.Get(key)
			r, err := reconcileValue(child, append(trail, key))
			if err != nil {
				return nil, err
			}
			br.Set(key, r)
		}
		return br, nil
	}

	// Index keyed: produce a sequence in ascending numeric order. The
	// builder keeps index growth contiguous from zero, so a gap here is a
	// defect, not a user error.
	indices := make([]int, len(keys))
	byIndex := make(map[int]string, len(keys))
	for i, key := range keys {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: index key %q at %s", ErrInternal, key, joinTrail(trail))
		}
		indices[i] = idx
		byIndex[idx] = key
	}
	sort.Ints(indices)
	for i, idx := range indices {
		if idx != i {
			return nil, fmt.Errorf("%w: index gap at %s, expected %d got %d", ErrInternal, joinTrail(trail), i, idx)
		}
	}

	out := make([]any, len(indices))
	for i, idx := range indices {
		child, _ := br.Get(byIndex[idx])
		r, err := reconcileValue(child, append(trail, byIndex[idx]))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
