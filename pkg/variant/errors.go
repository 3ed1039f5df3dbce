package variant

import (
	"fmt"
	"strings"
)

// NotFoundError reports a registry lookup for an unregistered tag.
type NotFoundError struct {
	Tag string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("variant: tag %q is not registered", e.Tag)
}

// MissingDiscriminatorError reports a polymorphic sub-tree with no
// discriminator key at all.
type MissingDiscriminatorError struct {
	Key string
}

func (e MissingDiscriminatorError) Error() string {
	return fmt.Sprintf("variant: discriminator %q is missing", e.Key)
}

// UnknownVariantError reports a discriminator value that matches no
// registered variant.
type UnknownVariantError struct {
	Tag   string
	Known []string
}

func (e UnknownVariantError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("variant: unknown variant %q", e.Tag)
	}
	return fmt.Sprintf("variant: unknown variant %q (known: %s)", e.Tag, strings.Join(e.Known, ", "))
}

// DiscriminatorMismatchError reports construction of a variant whose fixed
// tag disagrees with the supplied discriminator value.
type DiscriminatorMismatchError struct {
	Expected string
	Actual   string
}

func (e DiscriminatorMismatchError) Error() string {
	return fmt.Sprintf("variant: cannot load a %q value as %q", e.Actual, e.Expected)
}
