package customid

import (
	"fmt"

	"github.com/inventoria/backend/internal/domain/shared"
)

// ElementType identifies one kind of identifier template element
type ElementType string

const (
	ElementFixedText ElementType = "fixed_text"
	ElementRandom20  ElementType = "random_20"
	ElementRandom32  ElementType = "random_32"
	ElementRandom6   ElementType = "random_6"
	ElementRandom9   ElementType = "random_9"
	ElementGuid      ElementType = "guid"
	ElementDateTime  ElementType = "date_time"
	ElementSequence  ElementType = "sequence"
)

// SupportedElementTypes lists every element type the formatter understands,
// in the order configuration UIs should present them
var SupportedElementTypes = []ElementType{
	ElementFixedText,
	ElementRandom20,
	ElementRandom32,
	ElementRandom6,
	ElementRandom9,
	ElementGuid,
	ElementDateTime,
	ElementSequence,
}

// IsValidElementType returns true if the given type is a known element type
func IsValidElementType(t ElementType) bool {
	for _, known := range SupportedElementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ElementFormat holds the optional rendering modifiers of an element.
// Fields are ignored by element types that do not use them.
type ElementFormat struct {
	LeadingZeros bool   `json:"leading_zeros,omitempty"`
	DateFormat   string `json:"date_format,omitempty"`
	Width        int    `json:"width,omitempty"`
}

// Element is one configured piece of an identifier template.
// Value is meaningful only for fixed_text elements.
type Element struct {
	Type   ElementType    `json:"type"`
	Value  string         `json:"value,omitempty"`
	Format *ElementFormat `json:"format,omitempty"`
}

// ValidateElements checks a candidate element list at configuration time.
// Formatting itself is total and never fails; malformed configuration is
// rejected here, before it is ever persisted.
func ValidateElements(elements []Element) error {
	if len(elements) == 0 {
		return shared.NewDomainError("INVALID_FORMAT", "Identifier format must contain at least one element")
	}
	for i, el := range elements {
		if !IsValidElementType(el.Type) {
			return shared.NewDomainError("INVALID_FORMAT",
				fmt.Sprintf("Unknown element type %q at position %d", el.Type, i))
		}
		if el.Format != nil && el.Format.Width < 0 {
			return shared.NewDomainError("INVALID_FORMAT",
				fmt.Sprintf("Element at position %d has negative width", i))
		}
	}
	return nil
}

// DefaultElements returns the format an inventory starts with before an
// administrator configures one: "ITEM-" followed by a zero-padded sequence.
func DefaultElements() []Element {
	return []Element{
		{Type: ElementFixedText, Value: "ITEM-"},
		{Type: ElementSequence, Format: &ElementFormat{LeadingZeros: true}},
	}
}
