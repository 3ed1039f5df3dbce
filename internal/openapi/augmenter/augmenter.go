package augmenter

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-formdecode/pkg/openapi"
	"github.com/goliatone/go-formdecode/pkg/variant"
)

// Augmenter implements pkgopenapi.Augmenter using kin-openapi.
type Augmenter struct{}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Augmenter = (*Augmenter)(nil)

// New constructs an Augmenter.
func New() pkgopenapi.Augmenter {
	return &Augmenter{}
}

// Augment parses the document, injects the discriminator property into the
// component schema of every registered variant, and returns the document
// re-serialized as JSON.
func (a *Augmenter) Augment(ctx context.Context, doc pkgopenapi.Document, registry *variant.Registry, opts pkgopenapi.AugmentOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, errors.New("openapi augmenter: registry is nil")
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi augmenter: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi augmenter: load document: %w", err)
	}

	key := opts.DiscriminatorKey
	if key == "" {
		key = variant.DefaultDiscriminatorKey
	}
	title := opts.Title
	if title == "" {
		title = "Variant type"
	}

	for _, tag := range registry.Tags() {
		ref := componentSchema(spec, tag)
		if ref == nil || ref.Value == nil {
			if opts.AllowMissing {
				continue
			}
			return nil, fmt.Errorf("openapi augmenter: no component schema for variant %q", tag)
		}
		injectDiscriminator(ref.Value, key, tag, title)
	}

	out, err := spec.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("openapi augmenter: marshal document: %w", err)
	}
	return out, nil
}

func componentSchema(spec *openapi3.T, name string) *openapi3.SchemaRef {
	if spec == nil || spec.Components == nil {
		return nil
	}
	return spec.Components.Schemas[name]
}

func injectDiscriminator(schema *openapi3.Schema, key, tag, title string) {
	if schema.Properties == nil {
		schema.Properties = make(openapi3.Schemas)
	}
	property := &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeString},
		Enum:     []any{tag},
		Default:  tag,
		ReadOnly: true,
		Title:    title,
	}
	schema.Properties[key] = openapi3.NewSchemaRef("", property)
}
