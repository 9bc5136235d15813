package regs

import (
	"errors"
	"strings"

	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
	"github.com/Manu343726/sysregs/pkg/utils"
)

var (
	ErrUnknownRegister = errors.New("unknown register")
	ErrInvalidValue    = errors.New("invalid value")
)

// Process wide simulated register bank. Backs the package level accessors on non arm64 builds
var Simulated = sysreg.NewBank("simulated")

// All registers of an execution context
type Registers struct {
	CCSIDR_EL1 CCSIDREL1
	CSSELR_EL1 sysreg.ReadWrite[uint32]
	HCR_EL2    sysreg.ReadWrite[uint64]
	HSTR_EL2   sysreg.ReadWrite[uint32]
	SCTLR_EL2  sysreg.ReadWrite[uint32]
	SPSR_EL2   sysreg.ReadWrite[uint32]
	TTBR0_EL2  TTBR0EL2
	VBAR_EL2   sysreg.ReadWrite[uint64]
	VTTBR_EL2  VTTBREL2
}

// Returns the registers bound to the real hardware (or the simulated bank, see [Simulated])
func Hardware() Registers {
	return Registers{
		CCSIDR_EL1: CCSIDR_EL1,
		CSSELR_EL1: CSSELR_EL1,
		HCR_EL2:    HCR_EL2,
		HSTR_EL2:   HSTR_EL2,
		SCTLR_EL2:  SCTLR_EL2,
		SPSR_EL2:   SPSR_EL2,
		TTBR0_EL2:  TTBR0_EL2,
		VBAR_EL2:   VBAR_EL2,
		VTTBR_EL2:  VTTBR_EL2,
	}
}

// Returns a register set bound to the given bank
func Bind(bank *sysreg.Bank) Registers {
	return Registers{
		CCSIDR_EL1: CCSIDREL1{sysreg.BankReadOnly(bank, CCSIDR_EL1_Layout)},
		CSSELR_EL1: sysreg.BankReadWrite(bank, CSSELR_EL1_Layout),
		HCR_EL2:    sysreg.BankReadWrite(bank, HCR_EL2_Layout),
		HSTR_EL2:   sysreg.BankReadWrite(bank, HSTR_EL2_Layout),
		SCTLR_EL2:  sysreg.BankReadWrite(bank, SCTLR_EL2_Layout),
		SPSR_EL2:   sysreg.BankReadWrite(bank, SPSR_EL2_Layout),
		TTBR0_EL2:  TTBR0EL2{sysreg.BankReadWrite(bank, TTBR0_EL2_Layout)},
		VBAR_EL2:   sysreg.BankReadWrite(bank, VBAR_EL2_Layout),
		VTTBR_EL2:  VTTBREL2{sysreg.BankReadWrite(bank, VTTBR_EL2_Layout)},
	}
}

// A field value decoded from a register, independent of the register width
type DecodedField struct {
	Field       string `yaml:"field"`
	Range       string `yaml:"bits"`
	Value       uint64 `yaml:"value"`
	Symbol      string `yaml:"symbol,omitempty"`
	Description string `yaml:"-"`
}

// Width independent view of a register definition
type Descriptor interface {
	Name() string
	Description() string
	Bits() int
	Capability() sysreg.Capability
	Opaque() bool
	Fields() []string
	Documentation(leftpad int) string
	// Decodes all the fields of a raw value. Bits above the register width are ignored
	Decode(raw uint64) []DecodedField
	// Assigns field values given as FIELD=VALUE strings to the register in the bank. VALUE is
	// either an integer literal or a symbolic value name. The register is read and written once
	Encode(bank *sysreg.Bank, assignments ...string) error
}

type descriptor[T bitfield.Width] struct {
	layout     *bitfield.Layout[T]
	capability sysreg.Capability
}

func (d descriptor[T]) Name() string {
	return d.layout.Name
}

func (d descriptor[T]) Description() string {
	return d.layout.Description
}

func (d descriptor[T]) Bits() int {
	return d.layout.Bits()
}

func (d descriptor[T]) Capability() sysreg.Capability {
	return d.capability
}

func (d descriptor[T]) Opaque() bool {
	return d.layout.Opaque()
}

func (d descriptor[T]) Fields() []string {
	return utils.Map(d.layout.Fields(), func(f *bitfield.Field[T]) string { return f.Name })
}

func (d descriptor[T]) Documentation(leftpad int) string {
	return d.layout.Documentation(leftpad)
}

func (d descriptor[T]) Decode(raw uint64) []DecodedField {
	return utils.Map(d.layout.Decode(T(raw)), func(f bitfield.DecodedField[T]) DecodedField {
		return DecodedField{
			Field:       f.Field.Name,
			Range:       f.Field.Range(),
			Value:       uint64(f.Value),
			Symbol:      f.Symbol,
			Description: f.Field.Description,
		}
	})
}

func (d descriptor[T]) Encode(bank *sysreg.Bank, assignments ...string) error {
	values := make([]bitfield.FieldValue[T], 0, len(assignments))

	for _, assignment := range assignments {
		value, err := d.parseAssignment(assignment)
		if err != nil {
			return err
		}

		values = append(values, value)
	}

	sysreg.BankReadWrite(bank, d.layout).Modify(values...)
	return nil
}

func (d descriptor[T]) parseAssignment(assignment string) (bitfield.FieldValue[T], error) {
	name, literal, found := strings.Cut(assignment, "=")
	if !found {
		return bitfield.FieldValue[T]{}, utils.MakeError(ErrInvalidValue, "'%v' is not a FIELD=VALUE assignment", assignment)
	}

	field, err := d.layout.Field(strings.TrimSpace(name))
	if err != nil {
		return bitfield.FieldValue[T]{}, err
	}

	literal = strings.TrimSpace(literal)

	if len(literal) > 0 && literal[0] >= '0' && literal[0] <= '9' {
		value, err := utils.ParseUint(literal, d.layout.Bits())
		if err != nil {
			return bitfield.FieldValue[T]{}, utils.MakeError(ErrInvalidValue, "%v: '%v' is not a valid %v bits integer: %v", field, literal, d.layout.Bits(), err)
		}

		if T(value) > field.Max() {
			return bitfield.FieldValue[T]{}, utils.MakeError(ErrInvalidValue, "%v: %v does not fit in %v bits", field, literal, field.Bits)
		}

		return field.Val(T(value)), nil
	}

	return field.ValueByName(literal)
}

var registry = []Descriptor{
	descriptor[uint32]{CCSIDR_EL1_Layout, sysreg.Capability_ReadOnly},
	descriptor[uint32]{CSSELR_EL1_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint64]{HCR_EL2_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint32]{HSTR_EL2_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint32]{SCTLR_EL2_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint32]{SPSR_EL2_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint64]{TTBR0_EL2_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint64]{VBAR_EL2_Layout, sysreg.Capability_ReadWrite},
	descriptor[uint64]{VTTBR_EL2_Layout, sysreg.Capability_ReadWrite},
}

// Returns all the register definitions
func All() []Descriptor {
	return append([]Descriptor{}, registry...)
}

// Returns a register definition given its name. Names are matched case insensitively
func Lookup(name string) (Descriptor, error) {
	for _, d := range registry {
		if strings.EqualFold(d.Name(), name) {
			return d, nil
		}
	}

	return nil, utils.MakeError(ErrUnknownRegister, "'%v' (known registers: %v)", name, utils.FormatSlice(utils.Map(registry, Descriptor.Name), ", "))
}
