package decode

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formdecode/pkg/keypath"
	"github.com/goliatone/go-formdecode/pkg/nested"
	"github.com/goliatone/go-formdecode/pkg/variant"
)

// Field is one entry of a flat submission. Value is usually a string from
// the form widget but may be a structured value when the model layer
// pre-populates a default (for example an empty list).
type Field struct {
	Key   string
	Value any
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithPrefix sets the bracket-path root name to match the form widget's
// configured root.
func WithPrefix(prefix string) Option {
	return func(d *Decoder) {
		d.parser = keypath.New(keypath.WithPrefix(prefix))
	}
}

// WithRegistry wires a variant registry so ResolveVariant can discriminate
// polymorphic sub-trees after decoding.
func WithRegistry(registry *variant.Registry) Option {
	return func(d *Decoder) {
		d.registry = registry
	}
}

// WithDiscriminatorKey overrides the reserved discriminator property name
// used by ResolveVariant.
func WithDiscriminatorKey(key string) Option {
	return func(d *Decoder) {
		if key != "" {
			d.discriminator = key
		}
	}
}

// Decoder runs the full transformation pipeline: bracket-path parsing, tree
// building, and list reconciliation. A Decoder holds no per-submission state
// and is safe for concurrent use; each Decode call owns its tree
// exclusively.
type Decoder struct {
	parser        *keypath.Parser
	registry      *variant.Registry
	discriminator string
}

// New constructs a Decoder with the supplied options.
func New(options ...Option) *Decoder {
	d := &Decoder{
		parser:        keypath.New(),
		discriminator: variant.DefaultDiscriminatorKey,
	}
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode transforms one submission into a nested, list-disambiguated tree.
// Fields are applied in slice order, so duplicate keys resolve
// deterministically: the later entry wins. The submission's top level is
// always an object of form fields.
func (d *Decoder) Decode(fields []Field) (*nested.Branch, error) {
	builder := nested.NewBuilder()
	for _, field := range fields {
		path, _, err := d.parser.Parse(field.Key)
		if err != nil {
			return nil, err
		}
		if err := builder.Insert(path, field.Value); err != nil {
			return nil, err
		}
	}

	out, err := nested.Reconcile(builder.Root())
	if err != nil {
		return nil, err
	}
	root, ok := out.(*nested.Branch)
	if !ok {
		return nil, errors.New("decode: submission reconciled to a non-object root")
	}
	return root, nil
}

// DecodeMap decodes a submission delivered as a mapping. Mapping iteration
// order is not stable, so keys are applied in a deterministic order:
// verbatim field names first (pre-populated defaults must exist before
// bracket paths index into them), then bracket-path keys, each group
// sorted. Use Decode with an ordered slice when the transport preserves
// entry order.
func (d *Decoder) DecodeMap(data map[string]any) (*nested.Branch, error) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	open := d.parser.Prefix() + "["
	sort.Slice(keys, func(i, j int) bool {
		bi := strings.HasPrefix(keys[i], open)
		bj := strings.HasPrefix(keys[j], open)
		if bi != bj {
			return !bi
		}
		return keys[i] < keys[j]
	})

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, Field{Key: key, Value: data[key]})
	}
	return d.Decode(fields)
}

// DecodeForm decodes url.Values as posted by a form. When a key carries
// several values the last one wins, consistent with last-write-wins leaf
// semantics.
func (d *Decoder) DecodeForm(values url.Values) (*nested.Branch, error) {
	data := make(map[string]any, len(values))
	for key, list := range values {
		if len(list) == 0 {
			continue
		}
		data[key] = list[len(list)-1]
	}
	return d.DecodeMap(data)
}

// ResolveVariant discriminates a reconciled sub-tree against the configured
// registry.
func (d *Decoder) ResolveVariant(value any) (variant.Schema, error) {
	if d.registry == nil {
		return nil, errors.New("decode: no variant registry configured")
	}
	resolver := variant.NewResolver(d.registry, variant.WithDiscriminatorKey(d.discriminator))
	return resolver.Resolve(value)
}
