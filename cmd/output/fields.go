package output

import (
	"fmt"
	"io"

	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/Manu343726/sysregs/pkg/utils"
)

// Prints one decoded field per line, as "  [range] name = value (symbol)"
func PrintFields(out io.Writer, fields []regs.DecodedField) {
	if len(fields) == 0 {
		return
	}

	rangeWidth := utils.Max(utils.Map(fields, func(f regs.DecodedField) int { return len(f.Range) }))
	nameWidth := utils.Max(utils.Map(fields, func(f regs.DecodedField) int { return len(f.Field) }))

	for _, field := range fields {
		fmt.Fprintf(out, "  %v %v = %v",
			RangeColor.Sprintf("%-*v", rangeWidth, field.Range),
			FieldColor.Sprintf("%-*v", nameWidth, field.Field),
			ValueColor.Sprintf("%#x", field.Value))

		if len(field.Symbol) > 0 {
			fmt.Fprintf(out, " (%v)", SymbolColor.Sprint(field.Symbol))
		}

		fmt.Fprintln(out)
	}
}
