package keypath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_BracketPath(t *testing.T) {
	path, bracketed, err := Parse("root[address][street]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bracketed {
		t.Fatalf("expected bracketed classification")
	}
	if diff := cmp.Diff(Path{"address", "street"}, path); diff != "" {
		t.Fatalf("unexpected path (-want +got):\n%s", diff)
	}
}

func TestParse_SingleSegment(t *testing.T) {
	path, bracketed, err := Parse("root[name]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bracketed || len(path) != 1 || path[0] != "name" {
		t.Fatalf("unexpected result: %v bracketed=%v", path, bracketed)
	}
}

func TestParse_NumericSegments(t *testing.T) {
	path, bracketed, err := Parse("root[contacts][1][_type]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bracketed {
		t.Fatalf("expected bracketed classification")
	}
	if diff := cmp.Diff(Path{"contacts", "1", "_type"}, path); diff != "" {
		t.Fatalf("unexpected path (-want +got):\n%s", diff)
	}
}

func TestParse_VerbatimKey(t *testing.T) {
	for _, key := range []string{"name", "age", "hobbies", "other[foo]", "root"} {
		path, bracketed, err := Parse(key)
		if err != nil {
			t.Fatalf("parse %q: %v", key, err)
		}
		if bracketed {
			t.Fatalf("key %q should not classify as a bracket path", key)
		}
		if len(path) != 1 || path[0] != key {
			t.Fatalf("key %q: expected verbatim single-segment path, got %v", key, path)
		}
	}
}

func TestParse_EmptySegment(t *testing.T) {
	_, _, err := Parse("root[]")
	var empty EmptySegmentError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptySegmentError, got %v", err)
	}

	if _, _, err := Parse("root[a][]"); err == nil {
		t.Fatalf("expected error for trailing empty segment")
	}
}

func TestParse_StrayBrackets(t *testing.T) {
	key := "root[a]b[c]"
	path, bracketed, err := Parse(key)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bracketed {
		t.Fatalf("malformed bracket key should fall back to verbatim")
	}
	if len(path) != 1 || path[0] != key {
		t.Fatalf("unexpected path: %v", path)
	}
}

func TestParse_CustomPrefix(t *testing.T) {
	parser := New(WithPrefix("form"))

	path, bracketed, err := parser.Parse("form[items][0]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bracketed {
		t.Fatalf("expected bracketed classification")
	}
	if diff := cmp.Diff(Path{"items", "0"}, path); diff != "" {
		t.Fatalf("unexpected path (-want +got):\n%s", diff)
	}

	// The default root name no longer matches.
	if _, bracketed, _ := parser.Parse("root[items][0]"); bracketed {
		t.Fatalf("default prefix should not match a form-prefixed parser")
	}
}
