// Package formdecode turns flat, bracket-path form submissions (as produced
// by JSON-Editor style widgets) into nested, list-disambiguated data trees
// ready for typed validation, resolves polymorphic sub-trees through an
// explicit variant registry, and augments exported schemas so each variant
// carries its discriminator tag automatically.
package formdecode

import (
	"context"

	internalAugmenter "github.com/goliatone/go-formdecode/internal/openapi/augmenter"
	internalLoader "github.com/goliatone/go-formdecode/internal/openapi/loader"
	"github.com/goliatone/go-formdecode/pkg/decode"
	"github.com/goliatone/go-formdecode/pkg/nested"
	pkgopenapi "github.com/goliatone/go-formdecode/pkg/openapi"
	"github.com/goliatone/go-formdecode/pkg/variant"
)

// NewLoader constructs an OpenAPI document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewAugmenter constructs an OpenAPI schema augmenter backed by the internal
// implementation.
func NewAugmenter() pkgopenapi.Augmenter {
	return internalAugmenter.New()
}

// Decode runs the full pipeline over one submission with a freshly
// configured decoder. Callers decoding repeatedly should construct a
// decode.Decoder once and reuse it.
func Decode(fields []decode.Field, options ...decode.Option) (*nested.Branch, error) {
	return decode.New(options...).Decode(fields)
}

// AugmentSource loads an OpenAPI document from src and injects the
// discriminator property for every variant in the registry, returning the
// re-serialized document.
func AugmentSource(ctx context.Context, src pkgopenapi.Source, registry *variant.Registry, opts pkgopenapi.AugmentOptions, loaderOptions ...pkgopenapi.LoaderOption) ([]byte, error) {
	doc, err := NewLoader(loaderOptions...).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return NewAugmenter().Augment(ctx, doc, registry, opts)
}
