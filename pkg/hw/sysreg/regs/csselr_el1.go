package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

type CacheLevel uint32

const (
	CacheLevel_Level1 CacheLevel = 0b000
	CacheLevel_Level2 CacheLevel = 0b001
	CacheLevel_Level3 CacheLevel = 0b010
	CacheLevel_Level4 CacheLevel = 0b011
	CacheLevel_Level5 CacheLevel = 0b100
	CacheLevel_Level6 CacheLevel = 0b101
	CacheLevel_Level7 CacheLevel = 0b110
)

func (l CacheLevel) String() string {
	return CSSELR_EL1_Level.Symbol(l)
}

type CacheType uint32

const (
	CacheType_DataOrUnifiedCache CacheType = 0
	CacheType_InstructionCache   CacheType = 1
)

func (c CacheType) String() string {
	return CSSELR_EL1_InD.Symbol(c)
}

var (
	CSSELR_EL1_Level = bitfield.NewEnumField[CacheLevel](&bitfield.Field[uint32]{
		Name:        "Level",
		Offset:      1,
		Bits:        3,
		Description: "Cache level. Reads of CSSELR return an UNKNOWN value if programmed to a cache level that is not implemented",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "Level1", Value: uint32(CacheLevel_Level1)},
			{Name: "Level2", Value: uint32(CacheLevel_Level2)},
			{Name: "Level3", Value: uint32(CacheLevel_Level3)},
			{Name: "Level4", Value: uint32(CacheLevel_Level4)},
			{Name: "Level5", Value: uint32(CacheLevel_Level5)},
			{Name: "Level6", Value: uint32(CacheLevel_Level6)},
			{Name: "Level7", Value: uint32(CacheLevel_Level7)},
		},
	})

	CSSELR_EL1_InD = bitfield.NewEnumField[CacheType](&bitfield.Field[uint32]{
		Name:        "InD",
		Offset:      0,
		Bits:        1,
		Description: "Instruction not Data bit",
		Values: []bitfield.EnumValue[uint32]{
			{Name: "DataOrUnifiedCache", Value: uint32(CacheType_DataOrUnifiedCache), Description: "Data or unified cache"},
			{Name: "InstructionCache", Value: uint32(CacheType_InstructionCache), Description: "Instruction cache"},
		},
	})

	CSSELR_EL1_Layout = bitfield.NewLayout(&bitfield.Layout[uint32]{
		Name:        "CSSELR_EL1",
		Description: "Cache Size Selection Register",
		Details:     "Selects the current Cache Size ID Register, CCSIDR_EL1, by specifying the required cache level and the cache type",
	}, CSSELR_EL1_Level, CSSELR_EL1_InD)
)

var CSSELR_EL1 = sysreg.NewReadWrite(CSSELR_EL1_Layout, readCSSELREL1, writeCSSELREL1)
