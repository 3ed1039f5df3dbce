package openapi

import (
	"context"

	"github.com/goliatone/go-formdecode/pkg/variant"
)

// Augmenter injects a discriminator property into the component schema of
// every variant registered under a polymorphic base, returning the
// re-serialized document. It runs once at schema-export time, not per
// request.
type Augmenter interface {
	Augment(ctx context.Context, doc Document, registry *variant.Registry, opts AugmentOptions) ([]byte, error)
}

// AugmentOptions configures discriminator injection across a document.
type AugmentOptions struct {
	// DiscriminatorKey names the injected property; empty means "_type".
	DiscriminatorKey string

	// Title labels the injected property in form widgets; empty means a
	// default label.
	Title string

	// AllowMissing skips registered tags that have no matching component
	// schema instead of failing. Off by default: a registered variant
	// without an exported schema is usually a wiring mistake.
	AllowMissing bool
}
