package iss

import (
	"fmt"

	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
)

type ConditionValidity uint32

const (
	ConditionValidity_NotValid ConditionValidity = 0
	ConditionValidity_Valid    ConditionValidity = 1
)

func (v ConditionValidity) String() string {
	return MCR_MRC_CV.Symbol(v)
}

// Direction of a trapped coprocessor access
type Direction uint32

const (
	// MCR instruction
	Direction_SystemRegisterWrite Direction = 0
	// MRC or VMRS instruction
	Direction_SystemRegisterRead Direction = 1
)

func (d Direction) String() string {
	return MCR_MRC_Direction.Symbol(d)
}

// Condition code reported for unconditional instructions and for exceptions taken from AArch64
const ConditionAlways uint32 = 0b1110

var conditionMnemonics = [...]string{"EQ", "NE", "CS", "CC", "MI", "PL", "VS", "VC", "HI", "LS", "GE", "LT", "GT", "LE", "", ""}

var (
	MCR_MRC_CV = bitfield.NewEnumField[ConditionValidity](&bitfield.Field[uint32]{
		Name:        "CV",
		Offset:      24,
		Bits:        1,
		Description: "Condition code valid",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "NotValid", Value: uint32(ConditionValidity_NotValid)},
			{Name: "Valid", Value: uint32(ConditionValidity_Valid)},
		},
	})

	MCR_MRC_Cond = &bitfield.Field[uint32]{
		Name:        "Cond",
		Offset:      20,
		Bits:        4,
		Description: "Condition code of the trapped instruction. Only valid for exceptions taken from AArch32 when CV is set, 0b1110 for exceptions taken from AArch64 and unconditional instructions",
	}

	MCR_MRC_Opc2 = &bitfield.Field[uint32]{
		Name:        "Opc2",
		Offset:      17,
		Bits:        3,
		Description: "Opc2 value from the issued instruction. 0b000 for a trapped VMRS access",
	}

	MCR_MRC_Opc1 = &bitfield.Field[uint32]{
		Name:        "Opc1",
		Offset:      14,
		Bits:        3,
		Description: "Opc1 value from the issued instruction. 0b111 for a trapped VMRS access",
	}

	MCR_MRC_CRn = &bitfield.Field[uint32]{
		Name:        "CRn",
		Offset:      10,
		Bits:        4,
		Description: "CRn value from the issued instruction. The reg field of the VMRS encoding for a trapped VMRS access",
	}

	MCR_MRC_Rt = &bitfield.Field[uint32]{
		Name:        "Rt",
		Offset:      5,
		Bits:        5,
		Description: "General purpose register used for the transfer, in its AArch64 view",
	}

	MCR_MRC_CRm = &bitfield.Field[uint32]{
		Name:        "CRm",
		Offset:      1,
		Bits:        4,
		Description: "CRm value from the issued instruction. 0b0000 for a trapped VMRS access",
	}

	MCR_MRC_Direction = bitfield.NewEnumField[Direction](&bitfield.Field[uint32]{
		Name:        "Direction",
		Offset:      0,
		Bits:        1,
		Description: "Direction of the trapped instruction",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "SystemRegisterWrite", Value: uint32(Direction_SystemRegisterWrite), Description: "Write to System register space. MCR instruction"},
			{Name: "SystemRegisterRead", Value: uint32(Direction_SystemRegisterRead), Description: "Read from System register space. MRC or VMRS instruction"},
		},
	})

	MCR_MRC_Layout = bitfield.NewLayout(&bitfield.Layout[uint32]{
		Name:        "ISS_MCR_MRC",
		Description: "ISS encoding for an exception from an MCR or MRC access",
		Details:     "Used by trapped MCR or MRC accesses with coproc == 0b1111 or coproc == 0b1110, and by trapped VMRS accesses from the ID group trap",
	},
		MCR_MRC_CV,
		MCR_MRC_Cond,
		MCR_MRC_Opc2,
		MCR_MRC_Opc1,
		MCR_MRC_CRn,
		MCR_MRC_Rt,
		MCR_MRC_CRm,
		MCR_MRC_Direction,
	)
)

// Instruction specific syndrome of a trapped MCR, MRC or VMRS access. It is an immutable
// snapshot of the captured value, so it can be freely copied and shared
type McrMrcAccess struct {
	sysreg.ReadOnly[uint32]
}

// Wraps a captured syndrome value. Never fails, all bit patterns are accepted
func NewMcrMrcAccess(raw uint32) McrMrcAccess {
	return McrMrcAccess{sysreg.NewReadOnly(MCR_MRC_Layout, sysreg.Constant(raw))}
}

func (a McrMrcAccess) ConditionValidity() ConditionValidity {
	return MCR_MRC_CV.Of(a.Get())
}

func (a McrMrcAccess) Cond() uint32 {
	return a.Read(MCR_MRC_Cond)
}

func (a McrMrcAccess) Opc2() uint32 {
	return a.Read(MCR_MRC_Opc2)
}

func (a McrMrcAccess) Opc1() uint32 {
	return a.Read(MCR_MRC_Opc1)
}

func (a McrMrcAccess) CRn() uint32 {
	return a.Read(MCR_MRC_CRn)
}

func (a McrMrcAccess) Rt() uint32 {
	return a.Read(MCR_MRC_Rt)
}

func (a McrMrcAccess) CRm() uint32 {
	return a.Read(MCR_MRC_CRm)
}

func (a McrMrcAccess) Direction() Direction {
	return MCR_MRC_Direction.Of(a.Get())
}

// Returns true if the trapped instruction reads from system register space
func (a McrMrcAccess) IsRead() bool {
	return a.Direction() == Direction_SystemRegisterRead
}

// Returns the condition mnemonic of the trapped instruction, empty if the condition
// is not valid or the instruction is unconditional
func (a McrMrcAccess) Condition() string {
	if a.ConditionValidity() != ConditionValidity_Valid {
		return ""
	}

	return conditionMnemonics[a.Cond()]
}

// Returns the HSTR_EL2 field that controls trapping of accesses with the syndrome CRn
func (a McrMrcAccess) TrapBit() *bitfield.Field[uint32] {
	return regs.HSTR_EL2_Trap(a.CRn())
}

// Returns the assembly rendering of the trapped instruction for the given coprocessor number
func (a McrMrcAccess) Disassemble(coproc int) string {
	mnemonic := "MCR"
	if a.IsRead() {
		mnemonic = "MRC"
	}

	return fmt.Sprintf("%v%v p%v, %v, X%v, c%v, c%v, %v", mnemonic, a.Condition(), coproc, a.Opc1(), a.Rt(), a.CRn(), a.CRm(), a.Opc2())
}

// Like Disassemble(15)
func (a McrMrcAccess) String() string {
	return a.Disassemble(15)
}
