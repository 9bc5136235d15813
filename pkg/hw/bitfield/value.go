package bitfield

import (
	"fmt"
)

// A value assigned to a field, ready to be encoded into a raw register value
type FieldValue[T Width] struct {
	field *Field[T]
	value T
}

// Returns the field the value is assigned to
func (v FieldValue[T]) Field() *Field[T] {
	return v.field
}

// Returns the value, not shifted into the field position
func (v FieldValue[T]) Value() T {
	return v.value
}

// Returns the mask of the field the value is assigned to
func (v FieldValue[T]) Mask() T {
	return v.field.Mask()
}

// Returns the value shifted into the field position
func (v FieldValue[T]) Bits() T {
	return v.field.Encode(0, v.value)
}

// Returns raw with the field bits replaced by the value
func (v FieldValue[T]) Apply(raw T) T {
	return v.field.Encode(raw, v.value)
}

// Returns true if raw contains the value in the field bits
func (v FieldValue[T]) Matches(raw T) bool {
	return v.field.Decode(raw) == v.value
}

func (v FieldValue[T]) String() string {
	return fmt.Sprintf("%v=%v", v.field.Name, v.field.Format(v.value))
}

// Merges a set of field values into a single mask covering all the fields and the
// combined, already shifted, field bits
func Combine[T Width](values ...FieldValue[T]) (mask T, bits T) {
	for _, v := range values {
		mask |= v.Mask()
		bits = v.Apply(bits)
	}

	return mask, bits
}
