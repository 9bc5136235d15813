package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode register value",
	Short: "Decode a raw register value into its fields",
	Long: `Decodes a raw register value, printing the value of each field and its symbolic name if it has one.
Values can be given in decimal or with 0x, 0b and 0o prefixes.

Supported registers:
` + registerList(),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := regs.Lookup(args[0])
		if err != nil {
			return err
		}

		raw, err := parseRaw(d, args[1])
		if err != nil {
			return err
		}

		return printDecoded(cmd.OutOrStdout(), d, raw)
	},
}
