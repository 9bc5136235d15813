package bitfield

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/sysregs/pkg/utils"
)

var ErrInvalidLayout = errors.New("invalid register layout")

// Describes the bit layout of a register: its architectural name, raw width and the named bit ranges within it.
// Layouts are built once with [NewLayout] and never modified afterwards
type Layout[T Width] struct {
	// Architectural name of the register
	Name string
	// Register description (for documentation and debugging)
	Description string
	// Description details (for documentation and debugging)
	Details string

	fields []*Field[T]
}

// Initializes a layout with the given fields, returning an error if the fields do not describe a valid layout
func BuildLayout[T Width](layout *Layout[T], fields ...Ref[T]) (*Layout[T], error) {
	layout.fields = utils.Map(fields, func(f Ref[T]) *Field[T] { return f.Definition() })

	if err := layout.Validate(); err != nil {
		layout.fields = nil
		return nil, err
	}

	for _, field := range layout.fields {
		field.layout = layout
	}

	return layout, nil
}

// Initializes a layout with the given fields. Panics if the layout is not valid, so broken
// register definitions are caught when the package defining them is initialized
func NewLayout[T Width](layout *Layout[T], fields ...Ref[T]) *Layout[T] {
	result, err := BuildLayout(layout, fields...)

	if err != nil {
		panic(err)
	}

	return result
}

// Checks the layout invariants: fields have unique names, fit in the register and do not overlap,
// and any named values fit in their field and are unique
func (l *Layout[T]) Validate() error {
	if len(l.Name) == 0 {
		return utils.MakeError(ErrInvalidLayout, "layout has no name")
	}

	width := l.Bits()
	names := make(map[string]*Field[T], len(l.fields))
	var used T

	for _, field := range l.fields {
		if len(field.Name) == 0 {
			return utils.MakeError(ErrInvalidLayout, "%v: field at offset %v has no name", l.Name, field.Offset)
		}

		if _, duplicated := names[field.Name]; duplicated {
			return utils.MakeError(ErrInvalidLayout, "%v: duplicated field '%v'", l.Name, field.Name)
		}

		names[field.Name] = field

		if field.layout != nil && field.layout != l {
			return utils.MakeError(ErrInvalidLayout, "%v: field '%v' already belongs to layout %v", l.Name, field.Name, field.layout.Name)
		}

		if field.Bits < 1 {
			return utils.MakeError(ErrInvalidLayout, "%v: field '%v' has invalid width %v", l.Name, field.Name, field.Bits)
		}

		if field.Offset < 0 || field.Offset+field.Bits > width {
			return utils.MakeError(ErrInvalidLayout, "%v: field '%v' (offset %v, %v bits) does not fit in a %v bits register", l.Name, field.Name, field.Offset, field.Bits, width)
		}

		if used&field.Mask() != 0 {
			return utils.MakeError(ErrInvalidLayout, "%v: field '%v' %v overlaps with field '%v'", l.Name, field.Name, field.Range(), l.overlapping(field).Name)
		}

		used |= field.Mask()

		if err := l.validateValues(field); err != nil {
			return err
		}
	}

	return nil
}

func (l *Layout[T]) overlapping(field *Field[T]) *Field[T] {
	for _, other := range l.fields {
		if other != field && other.Mask()&field.Mask() != 0 {
			return other
		}
	}

	panic("unreachable")
}

func (l *Layout[T]) validateValues(field *Field[T]) error {
	names := make(map[string]struct{}, len(field.Values))
	values := make(map[T]string, len(field.Values))

	for _, v := range field.Values {
		if v.Value > field.Max() {
			return utils.MakeError(ErrInvalidLayout, "%v.%v: value %v (%v) does not fit in %v bits", l.Name, field.Name, v.Name, field.FormatRaw(v.Value), field.Bits)
		}

		if _, duplicated := names[v.Name]; duplicated {
			return utils.MakeError(ErrInvalidLayout, "%v.%v: duplicated value name '%v'", l.Name, field.Name, v.Name)
		}

		if other, duplicated := values[v.Value]; duplicated {
			return utils.MakeError(ErrInvalidLayout, "%v.%v: values '%v' and '%v' share the same encoding %v", l.Name, field.Name, other, v.Name, field.FormatRaw(v.Value))
		}

		names[v.Name] = struct{}{}
		values[v.Value] = v.Name
	}

	return nil
}

// Returns the raw width of the register in bits
func (l *Layout[T]) Bits() int {
	return WidthOf[T]()
}

// Returns all the fields of the layout, in definition order
func (l *Layout[T]) Fields() []*Field[T] {
	return append([]*Field[T]{}, l.fields...)
}

// Returns true if the layout has no fields, i.e. the register is an opaque value
func (l *Layout[T]) Opaque() bool {
	return len(l.fields) == 0
}

// Returns a field given its name. Names are matched case insensitively
func (l *Layout[T]) Field(name string) (*Field[T], error) {
	for _, field := range l.fields {
		if strings.EqualFold(field.Name, name) {
			return field, nil
		}
	}

	return nil, utils.MakeError(ErrUnknownField, "'%v' is not a field of %v", name, l.Name)
}

// Returns the mask of all the bits not covered by any field
func (l *Layout[T]) Unused() T {
	var used T

	for _, field := range l.fields {
		used |= field.Mask()
	}

	return ^used
}

// Decodes all fields of a raw register value
func (l *Layout[T]) Decode(raw T) []DecodedField[T] {
	return utils.Map(l.fields, func(field *Field[T]) DecodedField[T] {
		return DecodeField(field, raw)
	})
}

// Returns an error wrapping [ErrUnknownField] if the field was not registered in this layout
func (l *Layout[T]) CheckField(field Ref[T]) error {
	definition := field.Definition()

	switch definition.layout {
	case l:
		return nil
	case nil:
		return utils.MakeError(ErrUnknownField, "%v: field '%v' does not belong to any layout", l.Name, definition.Name)
	default:
		return utils.MakeError(ErrUnknownField, "%v: field '%v' belongs to layout %v", l.Name, definition.Name, definition.layout.Name)
	}
}

// Like [Layout.CheckField] for the fields of all the given values
func (l *Layout[T]) CheckValues(values ...FieldValue[T]) error {
	for _, v := range values {
		if err := l.CheckField(v.Field()); err != nil {
			return err
		}
	}

	return nil
}

// Returns the raw value obtained by writing the given field values into an all zeros register.
// Panics if a value refers to a field of another layout
func (l *Layout[T]) Encode(values ...FieldValue[T]) T {
	if err := l.CheckValues(values...); err != nil {
		panic(err)
	}

	_, bits := Combine(values...)
	return bits
}

func (l *Layout[T]) String() string {
	return fmt.Sprintf("%v (%v bits)", l.Name, l.Bits())
}
