package decode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlatten_RoundTrip(t *testing.T) {
	fields := []Field{
		{Key: "root[name]", Value: "John"},
		{Key: "root[address][street]", Value: "Main St"},
		{Key: "root[address][city]", Value: "Springfield"},
		{Key: "root[hobbies][0]", Value: "chess"},
		{Key: "root[hobbies][1]", Value: "running"},
	}

	decoder := New()
	tree, err := decoder.Decode(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	again, err := decoder.Decode(Flatten(tree, ""))
	if err != nil {
		t.Fatalf("decode flattened: %v", err)
	}
	if diff := cmp.Diff(tree.Map(), again.Map()); diff != "" {
		t.Fatalf("round trip changed the tree (-orig +again):\n%s", diff)
	}
}

func TestFlatten_KeyShapes(t *testing.T) {
	tree, err := New().Decode([]Field{
		{Key: "root[people][0][name]", Value: "Al"},
		{Key: "root[people][0][hobbies][0]", Value: "chess"},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := Flatten(tree, "root")
	want := []Field{
		{Key: "root[people][0][name]", Value: "Al"},
		{Key: "root[people][0][hobbies][0]", Value: "chess"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", diff)
	}
}

func TestFlatten_CustomPrefix(t *testing.T) {
	decoder := New(WithPrefix("form"))
	tree, err := decoder.Decode([]Field{{Key: "form[a]", Value: "x"}})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	fields := Flatten(tree, "form")
	if len(fields) != 1 || fields[0].Key != "form[a]" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestFlattenStrings(t *testing.T) {
	tree, err := New().Decode([]Field{
		{Key: "root[age]", Value: 30},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	fields := FlattenStrings(tree, "")
	if len(fields) != 1 || fields[0].Value != "30" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}
