package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciiFrame_NoFields(t *testing.T) {
	actual, err := AsciiFrame(nil, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		`15            0
+-------------+
|  (unused)   |
+-------------+
 <- 16 bits ->
`,
		actual)
}

func TestAsciiFrame_SingleField_WithTextPadding(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 0,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 4)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		`    15            0
    +-------------+
    | first field |
    +-------------+
     <- 16 bits ->
`,
		actual)
}

func TestAsciiFrame_AVeryLooooooongField(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "a very loooooooooong field",
			Begin: 0,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		`15                           0
+----------------------------+
| a very loooooooooong field |
+----------------------------+
 <-------- 16 bits --------->
`,
		actual)
}

func TestAsciiFrame_TwoFieldsWithAGap_LeftToRight(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 0,
			Width: 16,
		},
		{
			Name:  "second field",
			Begin: 20,
			Width: 16,
		},
	}

	actual, err := AsciiFrame(fields, 36, "bits", AsciiFrameUnitLayout_LeftToRight, 0)
	assert.NoError(t, err)

	assert.Equal(t, ""+
		`0             16           20             35
+-------------+------------+--------------+
| first field |  (unused)  | second field |
+-------------+------------+--------------+
 <- 16 bits -> <- 4 bits -> <- 16 bits -->
`,
		actual)
}

func TestAsciiFrame_UnsortedRegisterFields(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "InD",
			Begin: 0,
			Width: 1,
		},
		{
			Name:  "Level",
			Begin: 1,
			Width: 3,
		},
	}

	// Given in reverse order on purpose, the frame sorts them by position
	actual, err := AsciiFrame([]AsciiFrameField{fields[1], fields[0]}, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	require.NoError(t, err)

	assert.Equal(t, ""+
		`31            3            0            0
+-------------+------------+------------+
|  (unused)   |   Level    |    InD     |
+-------------+------------+------------+
 <- 28 bits -> <- 3 bits -> <- 1 bits ->
`,
		actual)
}

func TestAsciiFrame_OverlappingFields(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 0,
			Width: 8,
		},
		{
			Name:  "second field",
			Begin: 4,
			Width: 8,
		},
	}

	_, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)
}

func TestAsciiFrame_FieldsDoNotFitFrame(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "first field",
			Begin: 8,
			Width: 16,
		},
	}

	_, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)
}

func TestAsciiFrame_ZeroWidthField(t *testing.T) {
	fields := []AsciiFrameField{
		{
			Name:  "empty",
			Begin: 0,
			Width: 0,
		},
	}

	_, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
	assert.ErrorIs(t, err, ErrInvalidAsciiFrame)
}
