package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-formdecode/pkg/decode"
	pkgopenapi "github.com/goliatone/go-formdecode/pkg/openapi"
	"github.com/goliatone/go-formdecode/pkg/variant"
)

// PersonSubmission returns the canonical mixed-nesting submission used across
// pipeline tests: a person with an address, hobbies, and polymorphic
// contacts.
func PersonSubmission() []decode.Field {
	return []decode.Field{
		{Key: "root[name]", Value: "John Doe"},
		{Key: "root[age]", Value: "30"},
		{Key: "root[job]", Value: "Developer"},
		{Key: "root[address][house_number]", Value: "12"},
		{Key: "root[address][street]", Value: "Main St"},
		{Key: "root[address][city]", Value: "Springfield"},
		{Key: "root[hobbies][0]", Value: "chess"},
		{Key: "root[hobbies][1]", Value: "running"},
		{Key: "root[contacts][0][_type]", Value: "Friend"},
		{Key: "root[contacts][0][name]", Value: "Ann"},
		{Key: "root[contacts][0][known_since]", Value: "2020-01-01"},
		{Key: "root[contacts][1][_type]", Value: "FamilyMember"},
		{Key: "root[contacts][1][name]", Value: "Bo"},
		{Key: "root[contacts][1][relationship]", Value: "sister"},
	}
}

// ContactRegistry builds the Friend/FamilyMember registry mirroring the
// polymorphic contact examples.
func ContactRegistry(t *testing.T) *variant.Registry {
	t.Helper()

	registry := variant.NewRegistry()
	for _, s := range []variant.Schema{
		variant.StaticSchema{
			Name:       "Friend",
			FieldNames: []string{"name", "known_since"},
			Validator:  requireFields("name", "known_since"),
		},
		variant.StaticSchema{
			Name:       "FamilyMember",
			FieldNames: []string{"name", "relationship"},
			Validator:  requireFields("name", "relationship"),
		},
	} {
		if err := registry.Register(s); err != nil {
			t.Fatalf("register variant: %v", err)
		}
	}
	return registry
}

// LoadDocument reads a fixture file and wraps it as an OpenAPI document.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

func requireFields(names ...string) func(ctx context.Context, value any) error {
	return func(_ context.Context, value any) error {
		fields, ok := fieldLookup(value)
		if !ok {
			return errors.New("testsupport: value is not an object")
		}
		for _, name := range names {
			if _, present := fields[name]; !present {
				return fmt.Errorf("testsupport: missing field %q", name)
			}
		}
		return nil
	}
}

func fieldLookup(value any) (map[string]any, bool) {
	switch node := value.(type) {
	case map[string]any:
		return node, true
	case interface{ Map() map[string]any }:
		return node.Map(), true
	default:
		return nil, false
	}
}
