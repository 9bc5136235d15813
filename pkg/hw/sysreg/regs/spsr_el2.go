package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

type ExceptionMask uint32

const (
	ExceptionMask_Unmasked ExceptionMask = 0
	ExceptionMask_Masked   ExceptionMask = 1
)

func (m ExceptionMask) String() string {
	return SPSR_EL2_D.Symbol(m)
}

// Execution state an exception was taken from
type ArchState uint32

const (
	ArchState_AArch64 ArchState = 0
	ArchState_AArch32 ArchState = 1
)

func (s ArchState) String() string {
	return SPSR_EL2_M4.Symbol(s)
}

// AArch64 exception level and stack pointer, or AArch32 mode, an exception was taken from
type ProcessorMode uint32

const (
	ProcessorMode_EL0t       ProcessorMode = 0b0000
	ProcessorMode_EL1t       ProcessorMode = 0b0100
	ProcessorMode_EL1h       ProcessorMode = 0b0101
	ProcessorMode_EL2t       ProcessorMode = 0b1000
	ProcessorMode_EL2h       ProcessorMode = 0b1001
	ProcessorMode_FIQ        ProcessorMode = 0b0001
	ProcessorMode_IRQ        ProcessorMode = 0b0010
	ProcessorMode_Supervisor ProcessorMode = 0b0011
	ProcessorMode_Abort      ProcessorMode = 0b0111
	ProcessorMode_Hyp        ProcessorMode = 0b1010
	ProcessorMode_Undefined  ProcessorMode = 0b1011
	ProcessorMode_System     ProcessorMode = 0b1111
)

func (m ProcessorMode) String() string {
	return SPSR_EL2_M.Symbol(m)
}

// Returns the exception level encoded in M[3:2]. Only meaningful for AArch64 modes
func (m ProcessorMode) ExceptionLevel() int {
	return int(m>>2) & 0b11
}

// Returns true if M[0] selects the stack pointer of the exception level instead of SP0. Only meaningful for AArch64 modes
func (m ProcessorMode) UsesELStackPointer() bool {
	return m&1 != 0
}

func spsrFlag(name string, offset int, description string) *bitfield.Field[uint32] {
	return &bitfield.Field[uint32]{
		Name:        name,
		Offset:      offset,
		Bits:        1,
		Description: description,
	}
}

func spsrMask(name string, offset int, description string) bitfield.EnumField[uint32, ExceptionMask] {
	field := spsrFlag(name, offset, description)
	field.Values = []bitfield.EnumValue[uint32]{
		{Name: "Unmasked", Value: uint32(ExceptionMask_Unmasked)},
		{Name: "Masked", Value: uint32(ExceptionMask_Masked)},
	}

	return bitfield.NewEnumField[ExceptionMask](field)
}

var (
	SPSR_EL2_N  = spsrFlag("N", 31, "Negative condition flag, saved on taking an exception to EL2 and restored on exception return")
	SPSR_EL2_Z  = spsrFlag("Z", 30, "Zero condition flag, saved on taking an exception to EL2 and restored on exception return")
	SPSR_EL2_C  = spsrFlag("C", 29, "Carry condition flag, saved on taking an exception to EL2 and restored on exception return")
	SPSR_EL2_V  = spsrFlag("V", 28, "Overflow condition flag, saved on taking an exception to EL2 and restored on exception return")
	SPSR_EL2_SS = spsrFlag("SS", 21, "Software step. Value of PSTATE.SS immediately before the exception was taken")
	SPSR_EL2_IL = spsrFlag("IL", 20, "Illegal Execution state bit. Value of PSTATE.IL immediately before the exception was taken")

	SPSR_EL2_D = spsrMask("D", 9, "Watchpoint, Breakpoint and Software Step exceptions mask")
	SPSR_EL2_A = spsrMask("A", 8, "SError interrupt mask")
	SPSR_EL2_I = spsrMask("I", 7, "IRQ mask")
	SPSR_EL2_F = spsrMask("F", 6, "FIQ mask")

	SPSR_EL2_M4 = bitfield.NewEnumField[ArchState](&bitfield.Field[uint32]{
		Name:        "M4",
		Offset:      4,
		Bits:        1,
		Description: "Execution state that the exception was taken from",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "AArch64", Value: uint32(ArchState_AArch64)},
			{Name: "AArch32", Value: uint32(ArchState_AArch32)},
		},
	})

	SPSR_EL2_M = bitfield.NewEnumField[ProcessorMode](&bitfield.Field[uint32]{
		Name:        "M",
		Offset:      0,
		Bits:        4,
		Description: "AArch64 state (M[3:2] exception level, M[0] stack pointer selection) or AArch32 mode that the exception was taken from. Other values are reserved",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "EL0t", Value: uint32(ProcessorMode_EL0t)},
			{Name: "EL1t", Value: uint32(ProcessorMode_EL1t)},
			{Name: "EL1h", Value: uint32(ProcessorMode_EL1h)},
			{Name: "EL2t", Value: uint32(ProcessorMode_EL2t)},
			{Name: "EL2h", Value: uint32(ProcessorMode_EL2h)},
			{Name: "FIQ", Value: uint32(ProcessorMode_FIQ), Description: "AArch32 FIQ mode"},
			{Name: "IRQ", Value: uint32(ProcessorMode_IRQ), Description: "AArch32 IRQ mode"},
			{Name: "Supervisor", Value: uint32(ProcessorMode_Supervisor), Description: "AArch32 Supervisor mode"},
			{Name: "Abort", Value: uint32(ProcessorMode_Abort), Description: "AArch32 Abort mode"},
			{Name: "Hyp", Value: uint32(ProcessorMode_Hyp), Description: "AArch32 Hyp mode"},
			{Name: "Undefined", Value: uint32(ProcessorMode_Undefined), Description: "AArch32 Undefined mode"},
			{Name: "System", Value: uint32(ProcessorMode_System), Description: "AArch32 System mode"},
		},
	})

	SPSR_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint32]{
		Name:        "SPSR_EL2",
		Description: "Saved Program Status Register",
		Details:     "Holds the saved process state when an exception is taken to EL2",
	},
		SPSR_EL2_N,
		SPSR_EL2_Z,
		SPSR_EL2_C,
		SPSR_EL2_V,
		SPSR_EL2_SS,
		SPSR_EL2_IL,
		SPSR_EL2_D,
		SPSR_EL2_A,
		SPSR_EL2_I,
		SPSR_EL2_F,
		SPSR_EL2_M4,
		SPSR_EL2_M,
	)
)

var SPSR_EL2 = sysreg.NewReadWrite(SPSR_EL2_Layout, readSPSREL2, writeSPSREL2)
