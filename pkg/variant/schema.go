package variant

import "context"

// DefaultDiscriminatorKey is the reserved property name carrying a variant's
// tag. The underscore prefix keeps it clear of user-declared field names.
const DefaultDiscriminatorKey = "_type"

// Schema is the capability a variant's external model definition exposes to
// this package: enough to enumerate fields, produce a default value, and run
// full structural validation once the variant has been selected.
type Schema interface {
	// Tag is the variant's fixed identity, conventionally its declared name.
	Tag() string

	// Fields enumerates the variant's known field names.
	Fields() []string

	// Default returns the variant's declared default value, or nil.
	Default() any

	// Validate performs full structural validation of a reconciled value.
	// Value typing (e.g. "21" into an integer) belongs here, not in the
	// decode pipeline.
	Validate(ctx context.Context, value any) error
}

// StaticSchema is a plain Schema implementation for callers whose model layer
// does not supply its own capability, and for fixtures.
type StaticSchema struct {
	Name         string
	FieldNames   []string
	DefaultValue any
	Validator    func(ctx context.Context, value any) error
}

var _ Schema = StaticSchema{}

func (s StaticSchema) Tag() string {
	return s.Name
}

func (s StaticSchema) Fields() []string {
	return append([]string(nil), s.FieldNames...)
}

func (s StaticSchema) Default() any {
	return s.DefaultValue
}

func (s StaticSchema) Validate(ctx context.Context, value any) error {
	if s.Validator == nil {
		return nil
	}
	return s.Validator(ctx, value)
}
