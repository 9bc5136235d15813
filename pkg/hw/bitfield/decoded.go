package bitfield

import (
	"fmt"
)

// The value of one field extracted from a raw register value
type DecodedField[T Width] struct {
	Field *Field[T]
	Value T
	// Symbolic name of the value, empty if the bit pattern has no name
	Symbol string
}

// Decodes a field from a raw register value
func DecodeField[T Width](field *Field[T], raw T) DecodedField[T] {
	value := field.Decode(raw)
	decoded := DecodedField[T]{
		Field: field,
		Value: value,
	}

	if v, named := field.Lookup(value); named {
		decoded.Symbol = v.Name
	}

	return decoded
}

// Returns true if the decoded bit pattern has a symbolic name
func (d DecodedField[T]) Named() bool {
	return len(d.Symbol) > 0
}

func (d DecodedField[T]) String() string {
	if d.Named() {
		return fmt.Sprintf("%v=%v (%v)", d.Field.Name, d.Symbol, d.Field.FormatRaw(d.Value))
	}

	return fmt.Sprintf("%v=%v", d.Field.Name, d.Field.FormatRaw(d.Value))
}
