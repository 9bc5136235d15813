package bitfield

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/sysregs/pkg/utils"
)

// Raw register widths supported by the descriptors
type Width interface {
	~uint32 | ~uint64
}

// Underlying types allowed for Go enumerations bound to a field (See [EnumField])
type Enum interface {
	~uint32 | ~uint64
}

// Returns the number of bits of a raw register width
func WidthOf[T Width]() int {
	return utils.SizeofBits[T]()
}

var ErrUnknownField = errors.New("unknown field")
var ErrUnknownValue = errors.New("unknown field value")

// A named legal value of a field
type EnumValue[T Width] struct {
	// Symbolic name of the value
	Name string
	// Field value (not shifted into the field position)
	Value T
	// Value description (for documentation)
	Description string
}

// Anything that refers to a field definition. Implemented by [Field] and [EnumField]
type Ref[T Width] interface {
	Definition() *Field[T]
}

// Describes a range of bits within a register
type Field[T Width] struct {
	// Field name, unique within its layout
	Name string
	// Position of the first (least significant) bit of the field
	Offset int
	// Number of bits of the field
	Bits int
	// Field description (for documentation and debugging)
	Description string
	// Named legal values of the field. They don't need to cover all possible bit patterns
	Values []EnumValue[T]

	layout *Layout[T]
}

func (f *Field[T]) Definition() *Field[T] {
	return f
}

// Returns the layout the field belongs to, nil if the field was not registered in a layout yet
func (f *Field[T]) Layout() *Layout[T] {
	return f.layout
}

// Returns the mask selecting the field bits within a raw register value
func (f *Field[T]) Mask() T {
	return utils.Mask[T](f.Offset, f.Bits)
}

// Returns the biggest value that fits in the field
func (f *Field[T]) Max() T {
	return utils.AllOnes[T](f.Bits)
}

// Extracts the field value from a raw register value
func (f *Field[T]) Decode(raw T) T {
	return utils.CreateBitView(&raw).Read(f.Offset, f.Bits)
}

// Returns raw with the field bits replaced by value. Bits of value that don't fit in the field are dropped
func (f *Field[T]) Encode(raw T, value T) T {
	utils.CreateBitView(&raw).Write(value, f.Offset, f.Bits)
	return raw
}

// Returns true if any bit of the field is set in raw
func (f *Field[T]) IsSet(raw T) bool {
	return raw&f.Mask() != 0
}

// Returns a value of the field, truncated to the field width
func (f *Field[T]) Val(value T) FieldValue[T] {
	return FieldValue[T]{
		field: f,
		value: value & f.Max(),
	}
}

// Returns the named value matching value, if any
func (f *Field[T]) Lookup(value T) (EnumValue[T], bool) {
	for _, v := range f.Values {
		if v.Value == value {
			return v, true
		}
	}

	return EnumValue[T]{}, false
}

// Returns the field value with the given symbolic name. Names are matched case insensitively
func (f *Field[T]) ValueByName(name string) (FieldValue[T], error) {
	for _, v := range f.Values {
		if strings.EqualFold(v.Name, name) {
			return f.Val(v.Value), nil
		}
	}

	return FieldValue[T]{}, utils.MakeError(ErrUnknownValue, "'%v' is not a named value of %v (named values: %v)", name, f, utils.FormatSlice(utils.Map(f.Values, func(v EnumValue[T]) string { return v.Name }), ", "))
}

// Returns the symbolic name of value if it has one, its hex representation otherwise
func (f *Field[T]) Format(value T) string {
	if v, named := f.Lookup(value); named {
		return v.Name
	}

	return f.FormatRaw(value)
}

// Returns the hex representation of a field value
func (f *Field[T]) FormatRaw(value T) string {
	return utils.FormatUintHex(uint64(value), utils.HexDigits(f.Bits))
}

// Returns the [msb:lsb] bit range of the field
func (f *Field[T]) Range() string {
	if f.Bits == 1 {
		return fmt.Sprintf("[%v]", f.Offset)
	}

	return fmt.Sprintf("[%v:%v]", f.Offset+f.Bits-1, f.Offset)
}

// Returns the qualified name of the field, i.e. LAYOUT.FIELD
func (f *Field[T]) String() string {
	if f.layout != nil {
		return f.layout.Name + "." + f.Name
	}

	return f.Name
}

// A field whose values are represented with a Go enumeration type
type EnumField[T Width, E Enum] struct {
	*Field[T]
}

// Binds a field to an enumeration type
func NewEnumField[E Enum, T Width](field *Field[T]) EnumField[T, E] {
	return EnumField[T, E]{
		Field: field,
	}
}

// Extracts the field value from a raw register value. Never fails, unnamed bit patterns are returned as is
func (f EnumField[T, E]) Of(raw T) E {
	return E(f.Decode(raw))
}

// Returns true if the field value in raw is value
func (f EnumField[T, E]) Is(raw T, value E) bool {
	return f.Of(raw) == value
}

// Returns a field value from an enumeration value
func (f EnumField[T, E]) To(value E) FieldValue[T] {
	return f.Val(T(value))
}

// Returns true if value has a symbolic name
func (f EnumField[T, E]) Named(value E) bool {
	_, named := f.Lookup(T(value))
	return named
}

// Returns the symbolic name of value, or FIELD(0b...) for bit patterns with no name
func (f EnumField[T, E]) Symbol(value E) string {
	if v, named := f.Lookup(T(value)); named {
		return v.Name
	}

	return fmt.Sprintf("%v(0b%v)", f.Name, utils.FormatUintBinary(uint64(value), f.Bits))
}
