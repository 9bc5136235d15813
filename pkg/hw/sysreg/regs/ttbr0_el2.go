package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

func baddrField() *bitfield.Field[uint64] {
	return &bitfield.Field[uint64]{
		Name:        "BADDR",
		Offset:      1,
		Bits:        47,
		Description: "Translation table base address, bits [47:1]",
	}
}

func cnpField() *bitfield.Field[uint64] {
	return &bitfield.Field[uint64]{
		Name:        "CnP",
		Offset:      0,
		Bits:        1,
		Description: "Common not Private",
	}
}

var (
	TTBR0_EL2_ASID = &bitfield.Field[uint64]{
		Name:        "ASID",
		Offset:      48,
		Bits:        16,
		Description: "An ASID for the translation table base address. The upper 8 bits are RES0 if the implementation has only 8 bits of ASID",
	}

	TTBR0_EL2_BADDR = baddrField()
	TTBR0_EL2_CnP   = cnpField()

	TTBR0_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint64]{
		Name:        "TTBR0_EL2",
		Description: "Translation Table Base Register 0",
		Details:     "Holds the base address of the translation table for the initial lookup for stage 1 of the EL2 translation regime",
	}, TTBR0_EL2_ASID, TTBR0_EL2_BADDR, TTBR0_EL2_CnP)
)

// Reads the translation table base address held in the BADDR field
func getBaddr(register sysreg.ReadWrite[uint64], baddr *bitfield.Field[uint64]) uint64 {
	return register.Read(baddr) << 1
}

// Writes a translation table base address into the BADDR field. Bit 0 of addr is dropped
func setBaddr(register sysreg.ReadWrite[uint64], baddr *bitfield.Field[uint64], addr uint64) {
	register.Write(baddr, addr>>1)
}

// TTBR0_EL2 accessor
type TTBR0EL2 struct {
	sysreg.ReadWrite[uint64]
}

// Returns the translation table base address
func (r TTBR0EL2) GetBaddr() uint64 {
	return getBaddr(r.ReadWrite, TTBR0_EL2_BADDR)
}

// Sets the translation table base address, preserving ASID and CnP. Odd addresses lose bit 0
func (r TTBR0EL2) SetBaddr(addr uint64) {
	setBaddr(r.ReadWrite, TTBR0_EL2_BADDR, addr)
}

var TTBR0_EL2 = TTBR0EL2{sysreg.NewReadWrite(TTBR0_EL2_Layout, readTTBR0EL2, writeTTBR0EL2)}
