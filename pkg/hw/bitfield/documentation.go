package bitfield

import (
	"fmt"
	"strings"

	"github.com/Manu343726/sysregs/pkg/utils"
)

// Returns an ascii diagram of the layout fields
func (l *Layout[T]) Diagram(leftpad int) (string, error) {
	fields := utils.Map(l.fields, func(f *Field[T]) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  f.Name,
			Begin: f.Offset,
			Width: f.Bits,
		}
	})

	if l.Opaque() {
		fields = []utils.AsciiFrameField{{Name: l.Name, Begin: 0, Width: l.Bits()}}
	}

	return utils.AsciiFrame(fields, l.Bits(), "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}

// Returns full documentation for the register layout
func (l *Layout[T]) Documentation(leftpad int) string {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v\n\n", l))

	leftpad_str += "  "
	leftpad += 2

	builder.WriteString(leftpad_str)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpad_str)
	builder.WriteString(l.Description)
	builder.WriteString("\n\n")

	if len(l.Details) > 0 {
		builder.WriteString(leftpad_str)
		builder.WriteString("  ")
		builder.WriteString(l.Details)
		builder.WriteString("\n\n")
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("Layout:\n\n")

	diagram, err := l.Diagram(leftpad + 2)
	if err != nil {
		// Validated layouts always produce a diagram
		panic(fmt.Errorf("error generating documentation for register %v: %w", l.Name, err))
	}

	builder.WriteString(diagram)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Fields:\n\n")

	if l.Opaque() {
		builder.WriteString(leftpad_str)
		builder.WriteString("  (none)\n")
	}

	for _, field := range l.fields {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf(" %v %v: %v\n", field.Range(), field.Name, field.Description))

		for _, v := range field.Values {
			builder.WriteString(leftpad_str)
			builder.WriteString(fmt.Sprintf("     %v %v", field.FormatRaw(v.Value), v.Name))

			if len(v.Description) > 0 {
				builder.WriteString(": ")
				builder.WriteString(v.Description)
			}

			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (l *Layout[T]) DocString() string {
	return l.Documentation(0)
}
