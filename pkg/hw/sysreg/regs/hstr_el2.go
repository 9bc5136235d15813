package regs

import (
	"fmt"

	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

func hstrTrap(crn int) *bitfield.Field[uint32] {
	return &bitfield.Field[uint32]{
		Name:        fmt.Sprintf("T%v", crn),
		Offset:      crn,
		Bits:        1,
		Description: fmt.Sprintf("Trap Non-secure EL0 and EL1 AArch32 accesses to coprocessor 15 (coproc == 0b1111) registers with CRn == %v to EL2", crn),
	}
}

var (
	HSTR_EL2_T0  = hstrTrap(0)
	HSTR_EL2_T1  = hstrTrap(1)
	HSTR_EL2_T2  = hstrTrap(2)
	HSTR_EL2_T3  = hstrTrap(3)
	HSTR_EL2_T4  = hstrTrap(4)
	HSTR_EL2_T5  = hstrTrap(5)
	HSTR_EL2_T6  = hstrTrap(6)
	HSTR_EL2_T7  = hstrTrap(7)
	HSTR_EL2_T8  = hstrTrap(8)
	HSTR_EL2_T9  = hstrTrap(9)
	HSTR_EL2_T10 = hstrTrap(10)
	HSTR_EL2_T11 = hstrTrap(11)
	HSTR_EL2_T12 = hstrTrap(12)
	HSTR_EL2_T13 = hstrTrap(13)
	HSTR_EL2_T14 = hstrTrap(14)
	HSTR_EL2_T15 = hstrTrap(15)

	hstrTraps = [...]*bitfield.Field[uint32]{
		HSTR_EL2_T0, HSTR_EL2_T1, HSTR_EL2_T2, HSTR_EL2_T3,
		HSTR_EL2_T4, HSTR_EL2_T5, HSTR_EL2_T6, HSTR_EL2_T7,
		HSTR_EL2_T8, HSTR_EL2_T9, HSTR_EL2_T10, HSTR_EL2_T11,
		HSTR_EL2_T12, HSTR_EL2_T13, HSTR_EL2_T14, HSTR_EL2_T15,
	}

	HSTR_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint32]{
		Name:        "HSTR_EL2",
		Description: "Hypervisor System Trap Register",
		Details:     "Controls trapping to EL2 of Non-secure EL0 and EL1 accesses to AArch32 coprocessor 15 registers, selected by their primary register CRn",
	},
		HSTR_EL2_T15, HSTR_EL2_T14, HSTR_EL2_T13, HSTR_EL2_T12,
		HSTR_EL2_T11, HSTR_EL2_T10, HSTR_EL2_T9, HSTR_EL2_T8,
		HSTR_EL2_T7, HSTR_EL2_T6, HSTR_EL2_T5, HSTR_EL2_T4,
		HSTR_EL2_T3, HSTR_EL2_T2, HSTR_EL2_T1, HSTR_EL2_T0,
	)
)

// Returns the HSTR_EL2 field that traps accesses to coprocessor registers with the given CRn. Only the 4 least significant bits of crn are used
func HSTR_EL2_Trap(crn uint32) *bitfield.Field[uint32] {
	return hstrTraps[crn&0xf]
}

var HSTR_EL2 = sysreg.NewReadWrite(HSTR_EL2_Layout, readHSTREL2, writeHSTREL2)
