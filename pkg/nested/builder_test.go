package nested

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formdecode/pkg/keypath"
)

func TestBuilder_SimpleNesting(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"address", "street"}, "Main St")
	mustInsert(t, b, keypath.Path{"address", "city"}, "Springfield")
	mustInsert(t, b, keypath.Path{"name"}, "John")

	want := map[string]any{
		"address": map[string]any{"street": "Main St", "city": "Springfield"},
		"name":    "John",
	}
	if diff := cmp.Diff(want, b.Root().Map()); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestBuilder_LastWriteWins(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"name"}, "first")
	mustInsert(t, b, keypath.Path{"name"}, "second")

	got, _ := b.Root().Get("name")
	if got != "second" {
		t.Fatalf("expected last write to win, got %v", got)
	}
	if b.Root().Len() != 1 {
		t.Fatalf("duplicate key must not grow the branch")
	}
}

func TestBuilder_InsertionOrderPreserved(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"zeta"}, "1")
	mustInsert(t, b, keypath.Path{"alpha"}, "2")
	mustInsert(t, b, keypath.Path{"mid"}, "3")
	mustInsert(t, b, keypath.Path{"alpha"}, "4")

	want := []string{"zeta", "alpha", "mid"}
	if diff := cmp.Diff(want, b.Root().Keys()); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
}

func TestBuilder_DefaultListGrowth(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"hobbies"}, []any{})
	mustInsert(t, b, keypath.Path{"hobbies", "2"}, "chess")

	got, _ := b.Root().Get("hobbies")
	want := []any{"", "", "chess"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected list (-want +got):\n%s", diff)
	}
}

func TestBuilder_DefaultListNestedObject(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"contacts"}, []any{})
	mustInsert(t, b, keypath.Path{"contacts", "1", "name"}, "Ann")

	got, _ := b.Root().Get("contacts")
	list, ok := got.([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2-element list, got %#v", got)
	}
	if _, isBranch := list[0].(*Branch); !isBranch {
		t.Fatalf("placeholder slot should be an object, got %#v", list[0])
	}
	entry, ok := list[1].(*Branch)
	if !ok {
		t.Fatalf("expected object at index 1, got %#v", list[1])
	}
	if name, _ := entry.Get("name"); name != "Ann" {
		t.Fatalf("unexpected name: %v", name)
	}
}

func TestBuilder_DefaultListNestedList(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"matrix"}, []any{})
	mustInsert(t, b, keypath.Path{"matrix", "1", "0"}, "x")

	got, _ := b.Root().Get("matrix")
	want := []any{[]any{}, []any{"x"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected nested list (-want +got):\n%s", diff)
	}
}

func TestBuilder_MalformedIndex(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"hobbies"}, []any{})

	err := b.Insert(keypath.Path{"hobbies", "first"}, "chess")
	var malformed MalformedIndexError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedIndexError, got %v", err)
	}
	if malformed.Segment != "first" || malformed.Path != "hobbies" {
		t.Fatalf("unexpected error detail: %+v", malformed)
	}
}

func TestBuilder_IndexPrefill(t *testing.T) {
	b := NewBuilder()
	mustInsert(t, b, keypath.Path{"a", "2"}, "x")

	child, _ := b.Root().Get("a")
	br, ok := child.(*Branch)
	if !ok {
		t.Fatalf("expected branch, got %#v", child)
	}
	if diff := cmp.Diff([]string{"0", "1", "2"}, br.Keys()); diff != "" {
		t.Fatalf("missing indices should pre-fill (-want +got):\n%s", diff)
	}
	for _, key := range []string{"0", "1"} {
		if v, _ := br.Get(key); v != "" {
			t.Fatalf("expected scalar placeholder at %s, got %#v", key, v)
		}
	}
}

func TestBuilder_EmptyPath(t *testing.T) {
	if err := NewBuilder().Insert(nil, "x"); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func mustInsert(t *testing.T, b *Builder, path keypath.Path, value any) {
	t.Helper()
	if err := b.Insert(path, value); err != nil {
		t.Fatalf("insert %v: %v", path, err)
	}
}
