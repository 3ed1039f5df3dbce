package variant

import (
	"errors"
	"fmt"
)

// AugmentOptions configures discriminator injection into an exported schema.
type AugmentOptions struct {
	// Key names the discriminator property; defaults to "_type".
	Key string

	// Title and Description label the injected property for form widgets.
	// Both are sanitized to plain text before embedding.
	Title       string
	Description string
}

// Augment injects the reserved discriminator property into a variant's
// exported JSON Schema document (a plain map, as produced by most schema
// exporters). The property is an enumerated string restricted to exactly the
// variant's own tag, with that tag as the default, so a form widget renders
// it pre-filled and the tag round-trips through the flat submission without
// the operator ever typing it.
//
// The document is modified in place and also returned for chaining.
func Augment(doc map[string]any, s Schema, opts AugmentOptions) (map[string]any, error) {
	if doc == nil {
		return nil, errors.New("variant: schema document is nil")
	}
	if s == nil {
		return nil, errors.New("variant: schema is nil")
	}
	tag := s.Tag()
	if tag == "" {
		return nil, errors.New("variant: schema tag is empty")
	}

	key := opts.Key
	if key == "" {
		key = DefaultDiscriminatorKey
	}

	properties, err := propertyMap(doc)
	if err != nil {
		return nil, err
	}

	title := sanitizeText(opts.Title)
	if title == "" {
		title = "Variant type"
	}

	property := map[string]any{
		"type":     "string",
		"enum":     []any{tag},
		"default":  tag,
		"readOnly": true,
		"title":    title,
	}
	if description := sanitizeText(opts.Description); description != "" {
		property["description"] = description
	}

	properties[key] = property
	return doc, nil
}

// AugmentAll applies Augment to each entry of docs keyed by variant tag,
// resolving the schema for each tag through the registry.
func AugmentAll(docs map[string]map[string]any, registry *Registry, opts AugmentOptions) error {
	if registry == nil {
		return errors.New("variant: registry is nil")
	}
	for tag, doc := range docs {
		s, err := registry.Resolve(tag)
		if err != nil {
			return err
		}
		if _, err := Augment(doc, s, opts); err != nil {
			return fmt.Errorf("variant: augment %q: %w", tag, err)
		}
	}
	return nil
}

func propertyMap(doc map[string]any) (map[string]any, error) {
	raw, ok := doc["properties"]
	if !ok || raw == nil {
		properties := make(map[string]any)
		doc["properties"] = properties
		return properties, nil
	}
	properties, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("variant: document properties is %T, want object", raw)
	}
	return properties, nil
}
