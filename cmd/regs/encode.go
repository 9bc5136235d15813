package regs

import (
	"fmt"
	"log/slog"

	"github.com/Manu343726/sysregs/cmd/output"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode register [field=value...]",
	Short: "Compose a raw register value from field values",
	Long: `Writes the given field values into a register value and prints the result.
Field values are either integer literals or symbolic value names (See the docs command). Fields not
given keep the value they have in the --base value, zero by default.

Example:

  sysregs regs encode HCR_EL2 VM=1 FMO=1 RW=EL1IsAarch64`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := regs.Lookup(args[0])
		if err != nil {
			return err
		}

		baseLiteral, _ := cmd.Flags().GetString("base")
		base, err := parseRaw(d, baseLiteral)
		if err != nil {
			return err
		}

		traceAccesses, _ := cmd.Flags().GetBool("trace")

		var traces sysreg.TraceLog
		options := []sysreg.BankOption{sysreg.WithLogger(output.Logger())}
		if traceAccesses {
			options = append(options, sysreg.WithTracer(&traces))
		}

		bank := sysreg.NewBank("scratch", options...)
		bank.Store(d.Name(), base)

		if err := d.Encode(bank, args[1:]...); err != nil {
			return err
		}

		raw := bank.Load(d.Name())
		output.Logger().Debug("register encoded", slog.String("register", d.Name()), slog.Any("assignments", args[1:]))

		if traceAccesses {
			fmt.Fprint(cmd.ErrOrStderr(), traces.String())
		}

		return printDecoded(cmd.OutOrStdout(), d, raw)
	},
}

func init() {
	encodeCmd.Flags().StringP("base", "b", "0", "Initial register value the field values are written into")
	encodeCmd.Flags().Bool("trace", false, "Print the register accesses done while encoding to stderr")
}
