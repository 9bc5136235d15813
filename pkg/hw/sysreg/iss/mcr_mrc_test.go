package iss

import (
	"testing"

	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMcrMrcAccess_Decode(t *testing.T) {
	access := NewMcrMrcAccess(0x1F003C21)

	assert.Equal(t, ConditionValidity_Valid, access.ConditionValidity())
	assert.Equal(t, uint32(0x0), access.Cond())
	assert.Equal(t, uint32(0), access.Opc2())
	assert.Equal(t, uint32(0), access.Opc1())
	assert.Equal(t, uint32(0xf), access.CRn())
	assert.Equal(t, uint32(1), access.Rt())
	assert.Equal(t, uint32(0), access.CRm())
	assert.Equal(t, Direction_SystemRegisterRead, access.Direction())
	assert.True(t, access.IsRead())
	assert.Equal(t, uint32(0x1F003C21), access.Get())
}

func TestMcrMrcAccess_AllFields(t *testing.T) {
	// MCRNE p15, 5, X17, c9, c12, 3
	raw := MCR_MRC_Layout.Encode(
		MCR_MRC_CV.To(ConditionValidity_Valid),
		MCR_MRC_Cond.Val(0b0001),
		MCR_MRC_Opc2.Val(3),
		MCR_MRC_Opc1.Val(5),
		MCR_MRC_CRn.Val(9),
		MCR_MRC_Rt.Val(17),
		MCR_MRC_CRm.Val(12),
		MCR_MRC_Direction.To(Direction_SystemRegisterWrite),
	)
	access := NewMcrMrcAccess(raw)

	assert.Equal(t, uint32(0x0117_6638), raw)
	assert.Equal(t, uint32(3), access.Opc2())
	assert.Equal(t, uint32(5), access.Opc1())
	assert.Equal(t, uint32(9), access.CRn())
	assert.Equal(t, uint32(17), access.Rt())
	assert.Equal(t, uint32(12), access.CRm())
	assert.False(t, access.IsRead())
	assert.Equal(t, "NE", access.Condition())
	assert.Equal(t, "MCRNE p15, 5, X17, c9, c12, 3", access.String())
	assert.Equal(t, "MCRNE p14, 5, X17, c9, c12, 3", access.Disassemble(14))
}

func TestMcrMrcAccess_String(t *testing.T) {
	assert.Equal(t, "MRCEQ p15, 0, X1, c15, c0, 0", NewMcrMrcAccess(0x1F003C21).String())

	unconditional := MCR_MRC_Layout.Encode(MCR_MRC_CV.To(ConditionValidity_Valid), MCR_MRC_Cond.Val(ConditionAlways), MCR_MRC_Direction.To(Direction_SystemRegisterRead))
	assert.Equal(t, "MRC p15, 0, X0, c0, c0, 0", NewMcrMrcAccess(unconditional).String())

	assert.Equal(t, "MCR p15, 0, X0, c0, c0, 0", NewMcrMrcAccess(0x00f0_0000).String())
}

func TestMcrMrcAccess_IgnoresReservedBits(t *testing.T) {
	access := NewMcrMrcAccess(0xfe00_0000)

	assert.Equal(t, ConditionValidity_NotValid, access.ConditionValidity())
	assert.Equal(t, uint32(0), access.Cond())
	assert.Equal(t, Direction_SystemRegisterWrite, access.Direction())
}

func TestMcrMrcAccess_TrapBit(t *testing.T) {
	access := NewMcrMrcAccess(0x1F003C21)

	assert.Equal(t, regs.HSTR_EL2_T15, access.TrapBit())

	bank := sysreg.NewBank("cpu0")
	hstr := regs.Bind(bank).HSTR_EL2
	hstr.Write(access.TrapBit(), 1)

	assert.Equal(t, uint32(0x8000), hstr.Get())
}

func TestMcrMrcAccess_IsReadOnlySnapshot(t *testing.T) {
	access := NewMcrMrcAccess(0x1F003C21)
	copied := access

	assert.Equal(t, sysreg.Capability_ReadOnly, access.Capability())
	assert.Equal(t, access.Get(), copied.Get())

	decoded := access.Decode()
	require.Len(t, decoded, 8)
	assert.Equal(t, "CV=Valid (0x1)", decoded[0].String())
	assert.Equal(t, "Direction=SystemRegisterRead (0x1)", decoded[7].String())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "NotValid", ConditionValidity_NotValid.String())
	assert.Equal(t, "SystemRegisterWrite", Direction_SystemRegisterWrite.String())
}
