package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

type Cacheability uint32

const (
	Cacheability_NonCacheable Cacheability = 0
	Cacheability_Cacheable    Cacheability = 1
)

func (c Cacheability) String() string {
	return SCTLR_EL2_C.Symbol(c)
}

type MmuState uint32

const (
	MmuState_Disable MmuState = 0
	MmuState_Enable  MmuState = 1
)

func (s MmuState) String() string {
	return SCTLR_EL2_M.Symbol(s)
}

func cacheabilityValues() []bitfield.EnumValue[uint32] {
	return []bitfield.EnumValue[uint32]{
		{Name: "NonCacheable", Value: uint32(Cacheability_NonCacheable)},
		{Name: "Cacheable", Value: uint32(Cacheability_Cacheable)},
	}
}

var (
	SCTLR_EL2_I = bitfield.NewEnumField[Cacheability](&bitfield.Field[uint32]{
		Name:        "I",
		Offset:      12,
		Bits:        1,
		Description: "Instruction access Cacheability control, for accesses at EL0 and EL2. Ignored when HCR_EL2.DC is set",
		Values:      cacheabilityValues(),
	})

	SCTLR_EL2_C = bitfield.NewEnumField[Cacheability](&bitfield.Field[uint32]{
		Name:        "C",
		Offset:      2,
		Bits:        1,
		Description: "Cacheability control, for data accesses and EL2&0 stage 1 translation table walks. Ignored when HCR_EL2.DC is set",
		Values:      cacheabilityValues(),
	})

	SCTLR_EL2_M = bitfield.NewEnumField[MmuState](&bitfield.Field[uint32]{
		Name:        "M",
		Offset:      0,
		Bits:        1,
		Description: "MMU enable for EL2 and EL0 stage 1 address translation",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "Disable", Value: uint32(MmuState_Disable)},
			{Name: "Enable", Value: uint32(MmuState_Enable)},
		},
	})

	SCTLR_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint32]{
		Name:        "SCTLR_EL2",
		Description: "System Control Register",
		Details:     "Provides top level control of the system, including its memory system, at EL2",
	}, SCTLR_EL2_I, SCTLR_EL2_C, SCTLR_EL2_M)
)

var SCTLR_EL2 = sysreg.NewReadWrite(SCTLR_EL2_Layout, readSCTLREL2, writeSCTLREL2)
