package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidAsciiFrame = errors.New("invalid ascii frame")

type AsciiFrameField struct {
	// Name of the field
	Name string

	// Units within the frame the field begins from
	Begin int

	// Field width
	Width int
}

// The last unit within the frame used by this field
func (f *AsciiFrameField) TopUnit() int {
	return f.PastTopUnit() - 1
}

// The first unit within the frame used by the next field
func (f *AsciiFrameField) PastTopUnit() int {
	return f.Begin + f.Width
}

type AsciiFrameUnitLayout uint

const (
	// Units increase left to right
	AsciiFrameUnitLayout_LeftToRight AsciiFrameUnitLayout = iota
	// Units increase right to left
	AsciiFrameUnitLayout_RightToLeft
)

type asciiFrame struct {
	fields     []AsciiFrameField
	frameWidth int
	unit       string
	leftpad    int
	layout     AsciiFrameUnitLayout
}

func (f *asciiFrame) TopUnit() int {
	return f.frameWidth - 1
}

func writeRow(text string, textDecorationExtraLength int, filler string, length int, builder *strings.Builder) {
	free := length - len(text) - textDecorationExtraLength
	leftpadLength := free / 2
	rightpadLength := free - leftpadLength

	builder.WriteString(strings.Repeat(filler, max(leftpadLength, 0)))
	builder.WriteString(text)
	builder.WriteString(strings.Repeat(filler, max(rightpadLength, 0)))
}

func (f *asciiFrame) Draw() string {
	const (
		body_splitter   string = "|"
		border_splitter string = "+"
		border_body     string = "-"
		arrow_tip_left  string = "<-"
		arrow_body      string = "-"
		arrow_tip_right string = "->"
		index_body      string = " "
		arrow_splitter  string = " "
	)

	type Entry struct {
		index     string
		name      string
		width     string
		minLength int
	}

	leftpad := strings.Repeat(" ", f.leftpad)

	entries := make([]Entry, len(f.fields))

	for i := range entries {
		field := &f.fields[i]

		if f.layout == AsciiFrameUnitLayout_RightToLeft {
			field = &f.fields[len(f.fields)-i-1]
		}

		entry := &entries[i]

		entry.index = fmt.Sprintf("%v", field.Begin)

		if f.layout == AsciiFrameUnitLayout_RightToLeft {
			entry.index = fmt.Sprintf("%v", field.TopUnit())
		}

		entry.name = fmt.Sprintf(" %v ", field.Name)
		entry.width = fmt.Sprintf(" %v %v ", field.Width, f.unit)
		entry.minLength = Max([]int{len(entry.index), len(entry.name), len(arrow_tip_left) + len(entry.width) + len(arrow_tip_right)})
	}

	rows := make([]strings.Builder, 5)
	indices, header, body, footer, widths := &rows[0], &rows[1], &rows[2], &rows[3], &rows[4]

	for i := range rows {
		rows[i].WriteString(leftpad)
	}

	for _, entry := range entries {
		indices.WriteString(entry.index)
		indices.WriteString(strings.Repeat(index_body, entry.minLength-len(entry.index)+1))
		header.WriteString(border_splitter)
		header.WriteString(strings.Repeat(border_body, entry.minLength))
		body.WriteString(body_splitter)
		writeRow(entry.name, 0, " ", entry.minLength, body)
		footer.WriteString(border_splitter)
		footer.WriteString(strings.Repeat(border_body, entry.minLength))
		widths.WriteString(arrow_splitter)
		widths.WriteString(arrow_tip_left)
		writeRow(entry.width, len(arrow_tip_left)+len(arrow_tip_right), arrow_body, entry.minLength, widths)
		widths.WriteString(arrow_tip_right)
	}

	if f.layout == AsciiFrameUnitLayout_LeftToRight {
		indices.WriteString(fmt.Sprint(f.TopUnit()))
	} else {
		indices.WriteString("0")
	}

	header.WriteString(border_splitter)
	body.WriteString(body_splitter)
	footer.WriteString(border_splitter)

	var result strings.Builder

	for i := range rows {
		result.WriteString(rows[i].String())
		result.WriteString("\n")
	}

	return result.String()
}

func fillAsciiFrameGaps(fields []AsciiFrameField, frameWidth int) ([]AsciiFrameField, error) {
	result := make([]AsciiFrameField, 0, len(fields))
	currentUnit := 0

	for _, field := range fields {
		if field.Width <= 0 {
			return nil, MakeError(ErrInvalidAsciiFrame, "field '%v' has invalid width %v", field.Name, field.Width)
		}

		if field.Begin > currentUnit {
			result = append(result, AsciiFrameField{
				Name:  "(unused)",
				Begin: currentUnit,
				Width: field.Begin - currentUnit,
			})
		} else if field.Begin < currentUnit {
			return nil, MakeError(ErrInvalidAsciiFrame, "field '%v' begins at %v, overlapping the previous field which ends at %v", field.Name, field.Begin, currentUnit-1)
		}

		result = append(result, field)

		currentUnit = field.PastTopUnit()
	}

	if currentUnit > frameWidth {
		return nil, MakeError(ErrInvalidAsciiFrame, "fields take %v units but the frame is only %v units wide", currentUnit, frameWidth)
	}

	if currentUnit < frameWidth {
		result = append(result, AsciiFrameField{
			Name:  "(unused)",
			Begin: currentUnit,
			Width: frameWidth - currentUnit,
		})
	}

	return result, nil
}

// Prints an ascii diagram of a binary frame composed of contiguous fields of different unit lenghts.
// Fields can be given in any order, gaps between them are drawn as "(unused)" fields
func AsciiFrame(fields []AsciiFrameField, frameWidth int, unit string, layout AsciiFrameUnitLayout, leftpad int) (string, error) {
	sorted := append([]AsciiFrameField{}, fields...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Begin < sorted[j].Begin })

	allFields, err := fillAsciiFrameGaps(sorted, frameWidth)
	if err != nil {
		return "", err
	}

	frame := asciiFrame{
		fields:     allFields,
		frameWidth: frameWidth,
		unit:       unit,
		leftpad:    leftpad,
		layout:     layout,
	}

	return frame.Draw(), nil
}
