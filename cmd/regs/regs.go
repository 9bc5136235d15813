package regs

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/sysregs/cmd/output"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/Manu343726/sysregs/pkg/utils"
	"github.com/spf13/cobra"
)

// RegsCmd represents the regs command
var RegsCmd = &cobra.Command{
	Use:   "regs",
	Short: "Inspect AArch64 virtualization system registers",
}

func registerNames() []string {
	return utils.Map(regs.All(), regs.Descriptor.Name)
}

func registerList() string {
	return strings.Join(utils.Map(registerNames(), func(name string) string { return "  " + name }), "\n")
}

// Parses a raw register value given as an integer literal
func parseRaw(d regs.Descriptor, literal string) (uint64, error) {
	value, err := utils.ParseUint(literal, d.Bits())
	if err != nil {
		return 0, utils.MakeError(regs.ErrInvalidValue, "'%v' is not a valid %v bits %v value: %v", literal, d.Bits(), d.Name(), err)
	}

	return value, nil
}

type decodedRegister struct {
	Register string              `yaml:"register"`
	Value    string              `yaml:"value"`
	Fields   []regs.DecodedField `yaml:"fields,omitempty"`
}

func decodeRegister(d regs.Descriptor, raw uint64) decodedRegister {
	return decodedRegister{
		Register: d.Name(),
		Value:    utils.FormatUintHex(raw, utils.HexDigits(d.Bits())),
		Fields:   d.Decode(raw),
	}
}

func printDecoded(out io.Writer, d regs.Descriptor, raw uint64) error {
	format, err := output.CurrentFormat()
	if err != nil {
		return err
	}

	decoded := decodeRegister(d, raw)

	if format == output.Format_Yaml {
		return output.WriteYaml(out, decoded)
	}

	fmt.Fprintf(out, "%v = %v\n", output.RegisterColor.Sprint(decoded.Register), output.ValueColor.Sprint(decoded.Value))

	output.PrintFields(out, decoded.Fields)

	return nil
}

func init() {
	RegsCmd.AddCommand(docsCmd, listCmd, decodeCmd, encodeCmd)
}
