package nested

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInternal marks reconciliation defects that indicate a builder bug rather
// than bad client input. Callers should not surface these as user errors.
var ErrInternal = errors.New("nested: internal inconsistency")

// MalformedIndexError reports a segment that addresses into a sequence but is
// not composed solely of decimal digits.
type MalformedIndexError struct {
	Path    string
	Segment string
}

func (e MalformedIndexError) Error() string {
	return fmt.Sprintf("nested: segment %q at %s must be a decimal list index", e.Segment, e.Path)
}

// AmbiguousStructureError reports a node addressed both as a list and as an
// object, e.g. a[0] and a[foo] in the same submission.
type AmbiguousStructureError struct {
	Path     string
	IndexKey string
	FieldKey string
}

func (e AmbiguousStructureError) Error() string {
	return fmt.Sprintf("nested: %s is addressed both as a list (key %q) and as an object (key %q)", e.Path, e.IndexKey, e.FieldKey)
}

func joinTrail(trail []string) string {
	if len(trail) == 0 {
		return "<root>"
	}
	return strings.Join(trail, ".")
}
