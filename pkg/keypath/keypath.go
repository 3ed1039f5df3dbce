package keypath

import (
	"fmt"
	"strings"
)

// DefaultPrefix is the root name JSON-Editor style widgets use when encoding
// nested field locations, e.g. root[address][street].
const DefaultPrefix = "root"

// Path is the ordered sequence of segments extracted from one bracket-path
// key. Segments are opaque strings; whether a segment addresses an object
// field or a list index is resolved structurally later, not here.
type Path []string

// String renders the path using dotted notation for error messages.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// EmptySegmentError reports a bracket group with no content, e.g. root[].
type EmptySegmentError struct {
	Key string
}

func (e EmptySegmentError) Error() string {
	return fmt.Sprintf("keypath: empty segment in key %q", e.Key)
}

// Option configures a Parser before construction.
type Option func(*Parser)

// WithPrefix overrides the root name the parser matches against. Use this
// when the form widget is configured with a root other than "root".
func WithPrefix(prefix string) Option {
	return func(p *Parser) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			p.prefix = trimmed
		}
	}
}

// Parser splits bracket-path keys into ordered segments. It is stateless and
// safe for concurrent use.
type Parser struct {
	prefix string
}

// New constructs a Parser with the supplied options.
func New(options ...Option) *Parser {
	p := &Parser{prefix: DefaultPrefix}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Prefix returns the configured root name.
func (p *Parser) Prefix() string {
	return p.prefix
}

// Parse classifies a raw key. Keys matching <prefix>[seg1][seg2]...[segN]
// yield the ordered segments and bracketed=true. Any other key is a verbatim
// top-level field name and yields the single-segment path [key] with
// bracketed=false; that is a valid alternate case, not an error. The only
// error condition is an empty bracket group.
func (p *Parser) Parse(key string) (Path, bool, error) {
	open := p.prefix + "["
	if !strings.HasPrefix(key, open) || !strings.HasSuffix(key, "]") {
		return Path{key}, false, nil
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(key, open), "]")
	segments := strings.Split(inner, "][")
	for _, seg := range segments {
		if seg == "" {
			return nil, false, EmptySegmentError{Key: key}
		}
		if strings.ContainsAny(seg, "[]") {
			// Stray brackets mean the key never matched the grammar; treat
			// it as a verbatim field name like any other non-bracket key.
			return Path{key}, false, nil
		}
	}
	return Path(segments), true, nil
}

// Parse splits a key using the default "root" prefix.
func Parse(key string) (Path, bool, error) {
	return defaultParser.Parse(key)
}

var defaultParser = New()
