package sysreg

import (
	"fmt"

	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
)

// Reads the whole raw register value. On hardware this is a single MRS instruction
type Source[T bitfield.Width] func() T

// Writes the whole raw register value. On hardware this is a single MSR instruction
type Sink[T bitfield.Width] func(T)

// Returns a source that always reads the given value, for immutable register snapshots
func Constant[T bitfield.Width](value T) Source[T] {
	return func() T {
		return value
	}
}

// Anything whose raw register value can be read
type Getter[T bitfield.Width] interface {
	Get() T
}

// Reads an enumerated field as its Go enumeration type
func ReadEnum[T bitfield.Width, E bitfield.Enum](register Getter[T], field bitfield.EnumField[T, E]) E {
	return field.Of(register.Get())
}

func mustLayout[T bitfield.Width](layout *bitfield.Layout[T]) *bitfield.Layout[T] {
	if layout == nil {
		panic(fmt.Errorf("register accessor requires a layout"))
	}

	return layout
}

// Read access to a register. Accessors hold no mutable state and do not serialize hardware accesses:
// callers must only access registers banked to their own execution context
type ReadOnly[T bitfield.Width] struct {
	layout *bitfield.Layout[T]
	read   Source[T]
}

func NewReadOnly[T bitfield.Width](layout *bitfield.Layout[T], read Source[T]) ReadOnly[T] {
	if read == nil {
		panic(fmt.Errorf("read only accessor for %v requires a source", mustLayout(layout).Name))
	}

	return ReadOnly[T]{
		layout: mustLayout(layout),
		read:   read,
	}
}

// Returns the register layout
func (r ReadOnly[T]) Layout() *bitfield.Layout[T] {
	return r.layout
}

func (r ReadOnly[T]) Capability() Capability {
	return Capability_ReadOnly
}

// Returns the whole raw register value
func (r ReadOnly[T]) Get() T {
	return r.read()
}

// Returns the value of a field
func (r ReadOnly[T]) Read(field bitfield.Ref[T]) T {
	return field.Definition().Decode(r.read())
}

// Returns true if any bit of the field is set
func (r ReadOnly[T]) IsSet(field bitfield.Ref[T]) bool {
	return field.Definition().IsSet(r.read())
}

// Returns true if the register contains all the given field values. The register is read once
func (r ReadOnly[T]) Matches(values ...bitfield.FieldValue[T]) bool {
	raw := r.read()

	for _, v := range values {
		if !v.Matches(raw) {
			return false
		}
	}

	return true
}

// Reads the register and decodes all its fields
func (r ReadOnly[T]) Decode() []bitfield.DecodedField[T] {
	return r.layout.Decode(r.read())
}

func (r ReadOnly[T]) String() string {
	return fmt.Sprintf("%v [%v]", r.layout.Name, r.Capability())
}

// Write access to a register. Same concurrency rules as [ReadOnly]
type WriteOnly[T bitfield.Width] struct {
	layout *bitfield.Layout[T]
	write  Sink[T]
}

func NewWriteOnly[T bitfield.Width](layout *bitfield.Layout[T], write Sink[T]) WriteOnly[T] {
	if write == nil {
		panic(fmt.Errorf("write only accessor for %v requires a sink", mustLayout(layout).Name))
	}

	return WriteOnly[T]{
		layout: mustLayout(layout),
		write:  write,
	}
}

// Returns the register layout
func (w WriteOnly[T]) Layout() *bitfield.Layout[T] {
	return w.layout
}

func (w WriteOnly[T]) Capability() Capability {
	return Capability_WriteOnly
}

// Writes the whole raw register value
func (w WriteOnly[T]) Set(raw T) {
	w.write(raw)
}

// Writes the given field values into an all zeros register value. Bits not covered by the values are cleared.
// Panics if a value refers to a field that is not part of the register layout
func (w WriteOnly[T]) SetFields(values ...bitfield.FieldValue[T]) {
	w.write(w.layout.Encode(values...))
}

func (w WriteOnly[T]) String() string {
	return fmt.Sprintf("%v [%v]", w.layout.Name, w.Capability())
}

// Read and write access to a register. Same concurrency rules as [ReadOnly]: field writes are
// read-modify-write sequences and are not atomic
type ReadWrite[T bitfield.Width] struct {
	ReadOnly[T]
	WriteOnly[T]
}

func NewReadWrite[T bitfield.Width](layout *bitfield.Layout[T], read Source[T], write Sink[T]) ReadWrite[T] {
	return ReadWrite[T]{
		ReadOnly:  NewReadOnly(layout, read),
		WriteOnly: NewWriteOnly(layout, write),
	}
}

// Returns the register layout
func (rw ReadWrite[T]) Layout() *bitfield.Layout[T] {
	return rw.ReadOnly.layout
}

func (rw ReadWrite[T]) Capability() Capability {
	return Capability_ReadWrite
}

// Replaces the field bits with value, preserving all other bits. Bits of value that don't fit in the field are dropped.
// Panics if the field is not part of the register layout
func (rw ReadWrite[T]) Write(field bitfield.Ref[T], value T) {
	if err := rw.Layout().CheckField(field); err != nil {
		panic(err)
	}

	rw.write(field.Definition().Encode(rw.read(), value))
}

// Replaces the bits of all the given fields with one read-modify-write, preserving all other bits.
// Panics if a value refers to a field that is not part of the register layout
func (rw ReadWrite[T]) Modify(values ...bitfield.FieldValue[T]) {
	if err := rw.Layout().CheckValues(values...); err != nil {
		panic(err)
	}

	mask, bits := bitfield.Combine(values...)
	rw.write((rw.read() &^ mask) | bits)
}

func (rw ReadWrite[T]) String() string {
	return fmt.Sprintf("%v [%v]", rw.Layout().Name, rw.Capability())
}
