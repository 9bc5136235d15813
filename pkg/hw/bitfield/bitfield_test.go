package bitfield

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMode uint32

const (
	testMode_User   testMode = 0b0000
	testMode_Kernel testMode = 0b0101
	testMode_Hyp    testMode = 0b1001
)

type testLayout struct {
	layout *Layout[uint32]
	mode   EnumField[uint32, testMode]
	flag   *Field[uint32]
	level  *Field[uint32]
}

func makeTestLayout(t *testing.T) testLayout {
	l := testLayout{
		mode: NewEnumField[testMode](&Field[uint32]{
			Name:   "Mode",
			Offset: 0,
			Bits:   4,
			Values: []EnumValue[uint32]{
				{Name: "User", Value: uint32(testMode_User)},
				{Name: "Kernel", Value: uint32(testMode_Kernel), Description: "kernel mode"},
				{Name: "Hyp", Value: uint32(testMode_Hyp)},
			},
		}),
		flag: &Field[uint32]{
			Name:        "Flag",
			Offset:      4,
			Bits:        1,
			Description: "a single bit flag",
		},
		level: &Field[uint32]{
			Name:   "Level",
			Offset: 8,
			Bits:   3,
			Values: []EnumValue[uint32]{
				{Name: "Level1", Value: 0},
				{Name: "Level2", Value: 1},
			},
		},
	}

	layout, err := BuildLayout(&Layout[uint32]{
		Name:        "TEST_EL2",
		Description: "A register used for testing",
	}, l.level, l.flag, l.mode)
	require.NoError(t, err)

	l.layout = layout
	return l
}

func sampleRaws() []uint32 {
	r := rand.New(rand.NewSource(42))
	raws := []uint32{0, 0xffffffff, 0xaaaaaaaa, 0x55555555}

	for i := 0; i < 32; i++ {
		raws = append(raws, r.Uint32())
	}

	return raws
}

func TestField_Mask(t *testing.T) {
	l := makeTestLayout(t)

	assert.Equal(t, uint32(0xf), l.mode.Mask())
	assert.Equal(t, uint32(0x10), l.flag.Mask())
	assert.Equal(t, uint32(0x700), l.level.Mask())
	assert.Equal(t, uint32(0x7), l.level.Max())
}

func TestField_Decode(t *testing.T) {
	l := makeTestLayout(t)
	raw := uint32(0x0000_0519)

	assert.Equal(t, uint32(0b1001), l.mode.Decode(raw))
	assert.Equal(t, uint32(1), l.flag.Decode(raw))
	assert.Equal(t, uint32(0b101), l.level.Decode(raw))
	assert.True(t, l.flag.IsSet(raw))
	assert.False(t, l.flag.IsSet(0x0000_0509))
}

func TestField_RoundTrip(t *testing.T) {
	l := makeTestLayout(t)

	for _, field := range l.layout.Fields() {
		for _, raw := range sampleRaws() {
			for v := uint32(0); v <= field.Max(); v++ {
				assert.Equal(t, v, field.Decode(field.Encode(raw, v)), "field %v raw %#x value %#x", field, raw, v)
			}
		}
	}
}

func TestField_EncodeOnlyTouchesFieldBits(t *testing.T) {
	l := makeTestLayout(t)

	for _, field := range l.layout.Fields() {
		for _, raw := range sampleRaws() {
			for v := uint32(0); v <= field.Max(); v++ {
				encoded := field.Encode(raw, v)
				assert.Equal(t, raw&^field.Mask(), encoded&^field.Mask(), "field %v raw %#x value %#x", field, raw, v)
			}
		}
	}
}

func TestField_EncodeTruncatesValue(t *testing.T) {
	l := makeTestLayout(t)

	for _, field := range l.layout.Fields() {
		for _, raw := range sampleRaws() {
			for _, value := range []uint32{0xffffffff, 0x100, 0xdeadbeef, field.Max() + 1} {
				assert.Equal(t, field.Encode(raw, value&field.Max()), field.Encode(raw, value), "field %v raw %#x value %#x", field, raw, value)
			}
		}
	}

	assert.Equal(t, uint32(0x300), l.level.Encode(0, 0xb))
	assert.Equal(t, uint32(0x3), l.level.Val(0xb).Value())
}

func TestField_Lookup(t *testing.T) {
	l := makeTestLayout(t)

	value, named := l.mode.Lookup(0b0101)
	assert.True(t, named)
	assert.Equal(t, "Kernel", value.Name)
	assert.Equal(t, "kernel mode", value.Description)

	_, named = l.mode.Lookup(0b0110)
	assert.False(t, named)

	assert.Equal(t, "Hyp", l.mode.Format(0b1001))
	assert.Equal(t, "0x6", l.mode.Format(0b0110))
}

func TestField_ValueByName(t *testing.T) {
	l := makeTestLayout(t)

	value, err := l.mode.ValueByName("hyp")
	require.NoError(t, err)
	assert.Equal(t, uint32(0b1001), value.Value())
	assert.Equal(t, uint32(0b1001), value.Bits())

	value, err = l.level.ValueByName("Level2")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x100), value.Bits())

	_, err = l.mode.ValueByName("Monitor")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestField_String(t *testing.T) {
	l := makeTestLayout(t)

	assert.Equal(t, "TEST_EL2.Flag", l.flag.String())
	assert.Equal(t, "[4]", l.flag.Range())
	assert.Equal(t, "[10:8]", l.level.Range())
	assert.Equal(t, "Orphan", (&Field[uint32]{Name: "Orphan"}).String())
}

func TestEnumField(t *testing.T) {
	l := makeTestLayout(t)

	assert.Equal(t, testMode_Hyp, l.mode.Of(0xffff_fff9))
	assert.True(t, l.mode.Is(0x5, testMode_Kernel))
	assert.Equal(t, uint32(0x9), l.mode.To(testMode_Hyp).Apply(0))
	assert.True(t, l.mode.Named(testMode_User))
	assert.False(t, l.mode.Named(testMode(0b0110)))
	assert.Equal(t, "Kernel", l.mode.Symbol(testMode_Kernel))
	assert.Equal(t, "Mode(0b0110)", l.mode.Symbol(testMode(0b0110)))
}

func TestEnumField_EveryNamedValueRoundTrips(t *testing.T) {
	l := makeTestLayout(t)

	for _, v := range l.mode.Values {
		raw := l.mode.To(testMode(v.Value)).Apply(0xffff_ffff)
		decoded := DecodeField(l.mode.Field, raw)

		assert.Equal(t, v.Name, decoded.Symbol)
		assert.Equal(t, v.Value, decoded.Value)
	}
}

func TestFieldValue(t *testing.T) {
	l := makeTestLayout(t)
	v := l.level.Val(2)

	assert.Equal(t, l.level, v.Field())
	assert.Equal(t, uint32(0x700), v.Mask())
	assert.Equal(t, uint32(0x200), v.Bits())
	assert.Equal(t, uint32(0xfffffaff), v.Apply(0xffffffff))
	assert.True(t, v.Matches(0x0000_0200))
	assert.False(t, v.Matches(0x0000_0300))
	assert.Equal(t, "Level=0x2", v.String())
	assert.Equal(t, "Mode=Kernel", l.mode.To(testMode_Kernel).String())
}

func TestCombine(t *testing.T) {
	l := makeTestLayout(t)

	mask, bits := Combine(l.mode.To(testMode_Kernel), l.flag.Val(1), l.level.Val(1))

	assert.Equal(t, uint32(0x71f), mask)
	assert.Equal(t, uint32(0x115), bits)
}

func TestLayout_Decode(t *testing.T) {
	l := makeTestLayout(t)

	decoded := l.layout.Decode(0x0000_0116)
	require.Len(t, decoded, 3)

	assert.Equal(t, "Level", decoded[0].Field.Name)
	assert.Equal(t, uint32(1), decoded[0].Value)
	assert.Equal(t, "Level2", decoded[0].Symbol)
	assert.Equal(t, "Level=Level2 (0x1)", decoded[0].String())

	assert.Equal(t, "Flag=0x1", decoded[1].String())
	assert.False(t, decoded[1].Named())

	assert.Equal(t, uint32(0b0110), decoded[2].Value)
	assert.False(t, decoded[2].Named())
	assert.Equal(t, "Mode=0x6", decoded[2].String())
}

func TestLayout_Encode(t *testing.T) {
	l := makeTestLayout(t)

	assert.Equal(t, uint32(0x0000_0119), l.layout.Encode(l.mode.To(testMode_Hyp), l.flag.Val(1), l.level.Val(1)))
	assert.Equal(t, uint32(0), l.layout.Encode())
}

func TestLayout_CheckField(t *testing.T) {
	l := makeTestLayout(t)
	other := makeTestLayout(t)

	assert.NoError(t, l.layout.CheckField(l.flag))
	assert.NoError(t, l.layout.CheckField(l.mode))
	assert.NoError(t, l.layout.CheckValues(l.mode.To(testMode_Hyp), l.level.Val(1)))

	assert.ErrorIs(t, l.layout.CheckField(other.flag), ErrUnknownField)
	assert.ErrorIs(t, l.layout.CheckValues(l.flag.Val(1), other.level.Val(1)), ErrUnknownField)
	assert.ErrorIs(t, l.layout.CheckField(&Field[uint32]{Name: "Loose", Offset: 20, Bits: 1}), ErrUnknownField)
}

func TestLayout_EncodePanicsOnFieldsOfAnotherLayout(t *testing.T) {
	l := makeTestLayout(t)
	other := makeTestLayout(t)

	assert.Panics(t, func() { l.layout.Encode(l.flag.Val(1), other.level.Val(1)) })
}

func TestLayout_Field(t *testing.T) {
	l := makeTestLayout(t)

	field, err := l.layout.Field("level")
	require.NoError(t, err)
	assert.Equal(t, l.level, field)
	assert.Equal(t, l.layout, field.Layout())

	_, err = l.layout.Field("Nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestLayout_Properties(t *testing.T) {
	l := makeTestLayout(t)

	assert.Equal(t, 32, l.layout.Bits())
	assert.False(t, l.layout.Opaque())
	assert.Equal(t, ^uint32(0x71f), l.layout.Unused())
	assert.Equal(t, "TEST_EL2 (32 bits)", l.layout.String())

	opaque, err := BuildLayout(&Layout[uint64]{Name: "OPAQUE_EL2"})
	require.NoError(t, err)
	assert.True(t, opaque.Opaque())
	assert.Equal(t, 64, opaque.Bits())
	assert.Empty(t, opaque.Decode(0x1234))
}

func TestBuildLayout_Rejects(t *testing.T) {
	cases := map[string][]Ref[uint32]{
		"overlapping fields": {
			&Field[uint32]{Name: "A", Offset: 0, Bits: 4},
			&Field[uint32]{Name: "B", Offset: 3, Bits: 2},
		},
		"field past the register width": {
			&Field[uint32]{Name: "A", Offset: 30, Bits: 4},
		},
		"negative offset": {
			&Field[uint32]{Name: "A", Offset: -1, Bits: 1},
		},
		"zero width field": {
			&Field[uint32]{Name: "A", Offset: 0, Bits: 0},
		},
		"unnamed field": {
			&Field[uint32]{Offset: 0, Bits: 1},
		},
		"duplicated field names": {
			&Field[uint32]{Name: "A", Offset: 0, Bits: 1},
			&Field[uint32]{Name: "A", Offset: 1, Bits: 1},
		},
		"value wider than the field": {
			&Field[uint32]{Name: "A", Offset: 0, Bits: 2, Values: []EnumValue[uint32]{{Name: "Big", Value: 4}}},
		},
		"duplicated value names": {
			&Field[uint32]{Name: "A", Offset: 0, Bits: 2, Values: []EnumValue[uint32]{{Name: "X", Value: 0}, {Name: "X", Value: 1}}},
		},
		"duplicated value encodings": {
			&Field[uint32]{Name: "A", Offset: 0, Bits: 2, Values: []EnumValue[uint32]{{Name: "X", Value: 1}, {Name: "Y", Value: 1}}},
		},
	}

	for name, fields := range cases {
		t.Run(name, func(t *testing.T) {
			layout, err := BuildLayout(&Layout[uint32]{Name: "BROKEN"}, fields...)

			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Nil(t, layout)
		})
	}
}

func TestBuildLayout_RejectsUnnamedLayout(t *testing.T) {
	_, err := BuildLayout(&Layout[uint32]{}, &Field[uint32]{Name: "A", Offset: 0, Bits: 1})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestBuildLayout_RejectsFieldsOfAnotherLayout(t *testing.T) {
	l := makeTestLayout(t)

	_, err := BuildLayout(&Layout[uint32]{Name: "OTHER"}, l.flag)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestBuildLayout_FullWidthField(t *testing.T) {
	value := &Field[uint64]{Name: "Value", Offset: 0, Bits: 64}
	_, err := BuildLayout(&Layout[uint64]{Name: "FULL"}, value)
	require.NoError(t, err)

	assert.Equal(t, ^uint64(0), value.Mask())
	assert.Equal(t, uint64(0xdeadbeefcafe), value.Decode(0xdeadbeefcafe))
	assert.Equal(t, uint64(0x1234), value.Encode(0xffff, 0x1234))
}

func TestNewLayout_PanicsOnInvalidLayout(t *testing.T) {
	assert.Panics(t, func() {
		NewLayout(&Layout[uint64]{Name: "BROKEN"},
			&Field[uint64]{Name: "BADDR", Offset: 1, Bits: 47},
			&Field[uint64]{Name: "CnP", Offset: 0, Bits: 2},
		)
	})
}

func TestLayout_Documentation(t *testing.T) {
	l := makeTestLayout(t)

	doc := l.layout.DocString()

	assert.Contains(t, doc, "TEST_EL2 (32 bits)")
	assert.Contains(t, doc, "A register used for testing")
	assert.Contains(t, doc, "|   Level    |")
	assert.Contains(t, doc, "[4] Flag: a single bit flag")
	assert.Contains(t, doc, "[3:0] Mode:")
	assert.Contains(t, doc, "0x5 Kernel: kernel mode")
	assert.Contains(t, doc, "0x1 Level2")
}

func TestLayout_Diagram(t *testing.T) {
	l := makeTestLayout(t)

	diagram, err := l.layout.Diagram(0)
	require.NoError(t, err)

	assert.Equal(t, ""+
		`31            10           7            4            3            0
+-------------+------------+------------+------------+------------+
|  (unused)   |   Level    |  (unused)  |    Flag    |    Mode    |
+-------------+------------+------------+------------+------------+
 <- 21 bits -> <- 3 bits -> <- 3 bits -> <- 1 bits -> <- 4 bits ->
`,
		diagram)
}

func TestLayout_OpaqueDocumentation(t *testing.T) {
	opaque, err := BuildLayout(&Layout[uint64]{Name: "VBAR_EL2", Description: "Vector base address"})
	require.NoError(t, err)

	doc := opaque.DocString()

	assert.Contains(t, doc, "|  VBAR_EL2   |")
	assert.Contains(t, doc, "(none)")
}
