package variant

import (
	"errors"
	"fmt"
)

// Registry maps discriminator tags to variant schemas. Each polymorphic base
// owns one registry, populated explicitly at process initialization instead
// of by runtime type discovery. Registration is append-only; once request
// processing starts the registry is read-only and safe for concurrent reads
// without locking.
type Registry struct {
	tags    []string
	schemas map[string]Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]Schema)}
}

// Register adds a variant under its own tag. Empty tags and duplicate
// registrations are rejected; variants never replace each other.
func (r *Registry) Register(s Schema) error {
	if s == nil {
		return errors.New("variant: schema is nil")
	}
	tag := s.Tag()
	if tag == "" {
		return errors.New("variant: schema tag is empty")
	}
	if _, exists := r.schemas[tag]; exists {
		return fmt.Errorf("variant: tag %q is already registered", tag)
	}
	r.tags = append(r.tags, tag)
	r.schemas[tag] = s
	return nil
}

// MustRegister panics on registration failure. Intended for package-level
// init wiring where a failure is a programming error.
func (r *Registry) MustRegister(s Schema) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Resolve returns the schema registered under tag. Resolution is keyed, not
// positional: registration order never affects the result.
func (r *Registry) Resolve(tag string) (Schema, error) {
	s, ok := r.schemas[tag]
	if !ok {
		return nil, NotFoundError{Tag: tag}
	}
	return s, nil
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []string {
	return append([]string(nil), r.tags...)
}

// Len reports the number of registered variants.
func (r *Registry) Len() int {
	return len(r.tags)
}
