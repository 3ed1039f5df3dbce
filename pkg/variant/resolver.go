package variant

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formdecode/pkg/nested"
)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDiscriminatorKey overrides the reserved discriminator property name.
func WithDiscriminatorKey(key string) ResolverOption {
	return func(r *Resolver) {
		if key != "" {
			r.key = key
		}
	}
}

// Resolver selects the concrete variant for a reconciled sub-tree by reading
// its discriminator key and looking the value up in a registry.
type Resolver struct {
	registry *Registry
	key      string
}

// NewResolver constructs a Resolver over the supplied registry.
func NewResolver(registry *Registry, options ...ResolverOption) *Resolver {
	r := &Resolver{registry: registry, key: DefaultDiscriminatorKey}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Key returns the discriminator property name in use.
func (r *Resolver) Key() string {
	return r.key
}

// Resolve reads the discriminator from value and returns the matching
// schema. Value may be a *nested.Branch or a plain map[string]any.
func (r *Resolver) Resolve(value any) (Schema, error) {
	if r.registry == nil {
		return nil, fmt.Errorf("variant: resolver has no registry")
	}
	tag, ok := discriminatorValue(value, r.key)
	if !ok || tag == "" {
		return nil, MissingDiscriminatorError{Key: r.key}
	}
	s, err := r.registry.Resolve(tag)
	if err != nil {
		return nil, UnknownVariantError{Tag: tag, Known: r.registry.Tags()}
	}
	return s, nil
}

// Validate resolves the variant for value and delegates full structural
// validation to it.
func (r *Resolver) Validate(ctx context.Context, value any) error {
	s, err := r.Resolve(value)
	if err != nil {
		return err
	}
	return s.Validate(ctx, value)
}

// VerifyTag guards variant construction: when value carries a discriminator
// that disagrees with the schema's fixed identity, the construction must be
// rejected. A value with no discriminator passes; absence is the resolver's
// concern, not a mismatch.
func VerifyTag(s Schema, value any, key string) error {
	if key == "" {
		key = DefaultDiscriminatorKey
	}
	tag, ok := discriminatorValue(value, key)
	if !ok || tag == "" {
		return nil
	}
	if tag != s.Tag() {
		return DiscriminatorMismatchError{Expected: s.Tag(), Actual: tag}
	}
	return nil
}

func discriminatorValue(value any, key string) (string, bool) {
	var raw any
	switch node := value.(type) {
	case *nested.Branch:
		v, ok := node.Get(key)
		if !ok {
			return "", false
		}
		raw = v
	case map[string]any:
		v, ok := node[key]
		if !ok {
			return "", false
		}
		raw = v
	default:
		return "", false
	}
	tag, ok := raw.(string)
	return tag, ok
}
