package regs

import (
	"fmt"

	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

var (
	CCSIDR_EL1_NumSets = &bitfield.Field[uint32]{
		Name:        "NumSets",
		Offset:      13,
		Bits:        15,
		Description: "(Number of sets in cache) - 1. A value of 0 indicates 1 set in the cache. The number of sets does not have to be a power of 2",
	}

	CCSIDR_EL1_Associativity = &bitfield.Field[uint32]{
		Name:        "Associativity",
		Offset:      3,
		Bits:        10,
		Description: "(Associativity of cache) - 1. A value of 0 indicates an associativity of 1. The associativity does not have to be a power of 2",
	}

	CCSIDR_EL1_LineSize = &bitfield.Field[uint32]{
		Name:        "LineSize",
		Offset:      0,
		Bits:        3,
		Description: "(Log2(Number of bytes in cache line)) - 4. A value of 0 means 16 bytes lines, the minimum line length",
	}

	CCSIDR_EL1_Layout = bitfield.NewLayout(&bitfield.Layout[uint32]{
		Name:        "CCSIDR_EL1",
		Description: "Current Cache Size ID Register - EL1",
		Details:     "Provides information about the architecture of the cache currently selected by CSSELR_EL1",
	}, CCSIDR_EL1_NumSets, CCSIDR_EL1_Associativity, CCSIDR_EL1_LineSize)
)

// Cache geometry decoded from a CCSIDR_EL1 value
type CacheGeometry struct {
	Sets      uint32
	Ways      uint32
	LineBytes uint32
}

// Returns the geometry described by a raw CCSIDR_EL1 value
func CacheGeometryOf(raw uint32) CacheGeometry {
	return CacheGeometry{
		Sets:      CCSIDR_EL1_NumSets.Decode(raw) + 1,
		Ways:      CCSIDR_EL1_Associativity.Decode(raw) + 1,
		LineBytes: 1 << (CCSIDR_EL1_LineSize.Decode(raw) + 4),
	}
}

// Returns the total cache size in bytes
func (g CacheGeometry) Size() uint64 {
	return uint64(g.Sets) * uint64(g.Ways) * uint64(g.LineBytes)
}

func (g CacheGeometry) String() string {
	return fmt.Sprintf("%v sets, %v ways, %v bytes lines (%v bytes)", g.Sets, g.Ways, g.LineBytes, g.Size())
}

// CCSIDR_EL1 accessor
type CCSIDREL1 struct {
	sysreg.ReadOnly[uint32]
}

// Reads the register once and returns the geometry of the currently selected cache
func (r CCSIDREL1) Geometry() CacheGeometry {
	return CacheGeometryOf(r.Get())
}

var CCSIDR_EL1 = CCSIDREL1{sysreg.NewReadOnly(CCSIDR_EL1_Layout, readCCSIDREL1)}
