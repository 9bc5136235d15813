package iss

import (
	"fmt"

	"github.com/Manu343726/sysregs/cmd/output"
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/iss"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/Manu343726/sysregs/pkg/utils"
	"github.com/spf13/cobra"
)

type decodedSyndrome struct {
	Syndrome    string              `yaml:"iss"`
	Instruction string              `yaml:"instruction"`
	TrapBit     string              `yaml:"trap_bit"`
	Fields      []regs.DecodedField `yaml:"fields"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode value",
	Short: "Decode the ISS of a trapped MCR, MRC or VMRS access",
	Long: `Decodes the instruction specific syndrome (ESR_EL2[24:0]) reported for a trapped MCR, MRC or VMRS access,
printing the trapped instruction, its fields and the HSTR_EL2 bit that controls the trap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := utils.ParseUint(args[0], 32)
		if err != nil {
			return utils.MakeError(regs.ErrInvalidValue, "'%v' is not a valid syndrome: %v", args[0], err)
		}

		coproc, _ := cmd.Flags().GetInt("coproc")
		if coproc != 14 && coproc != 15 {
			return utils.MakeError(regs.ErrInvalidValue, "coprocessor must be 14 or 15, got %v", coproc)
		}

		format, err := output.CurrentFormat()
		if err != nil {
			return err
		}

		access := iss.NewMcrMrcAccess(uint32(raw))
		decoded := decodedSyndrome{
			Syndrome:    utils.FormatUintHex(raw, 8),
			Instruction: access.Disassemble(coproc),
			TrapBit:     access.TrapBit().String(),
			Fields: utils.Map(access.Decode(), func(f bitfield.DecodedField[uint32]) regs.DecodedField {
				return regs.DecodedField{
					Field:  f.Field.Name,
					Range:  f.Field.Range(),
					Value:  uint64(f.Value),
					Symbol: f.Symbol,
				}
			}),
		}

		out := cmd.OutOrStdout()

		if format == output.Format_Yaml {
			return output.WriteYaml(out, decoded)
		}

		fmt.Fprintf(out, "%v = %v\n", output.RegisterColor.Sprint("ISS"), output.ValueColor.Sprint(decoded.Syndrome))
		fmt.Fprintf(out, "  instruction: %v\n", output.SymbolColor.Sprint(decoded.Instruction))
		fmt.Fprintf(out, "  trapped by:  %v\n", output.FieldColor.Sprint(decoded.TrapBit))

		output.PrintFields(out, decoded.Fields)

		return nil
	},
}

func init() {
	decodeCmd.Flags().Int("coproc", 15, "Coprocessor number of the trapped access, 15 (EC 0x03) or 14 (EC 0x05)")
}
