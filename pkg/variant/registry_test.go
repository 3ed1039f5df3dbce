package variant

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(StaticSchema{Name: "Friend"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(StaticSchema{Name: "FamilyMember"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	s, err := registry.Resolve("Friend")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Tag() != "Friend" {
		t.Fatalf("unexpected schema: %q", s.Tag())
	}
}

func TestRegistry_NotFound(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("Ghost")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Tag != "Ghost" {
		t.Fatalf("unexpected tag: %q", notFound.Tag)
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(StaticSchema{Name: "Friend"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(StaticSchema{Name: "Friend"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if registry.Len() != 1 {
		t.Fatalf("failed registration must not grow the registry")
	}
}

func TestRegistry_EmptyTagRejected(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(StaticSchema{}); err == nil {
		t.Fatalf("expected empty tag to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil schema to fail")
	}
}

func TestRegistry_TagsInRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(StaticSchema{Name: "C"})
	registry.MustRegister(StaticSchema{Name: "A"})
	registry.MustRegister(StaticSchema{Name: "B"})

	if diff := cmp.Diff([]string{"C", "A", "B"}, registry.Tags()); diff != "" {
		t.Fatalf("unexpected tag order (-want +got):\n%s", diff)
	}
}
