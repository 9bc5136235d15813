package regs

import (
	"fmt"
	"os"

	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs [register...]",
	Short: "Show register documentation",
	Long: `Dumps the documentation (description, bit layout and fields) of the given registers, or all of them if none is given.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output-file flag.

Supported registers:
` + registerList(),
	ValidArgs: registerNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptors := regs.All()

		if len(args) > 0 {
			descriptors = descriptors[:0]

			for _, name := range args {
				d, err := regs.Lookup(name)
				if err != nil {
					return err
				}

				descriptors = append(descriptors, d)
			}
		}

		out := cmd.OutOrStdout()

		if outputFile, _ := cmd.Flags().GetString("output-file"); outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("error creating file: %w", err)
			}
			defer file.Close()

			out = file
		}

		for i, d := range descriptors {
			if i > 0 {
				fmt.Fprintln(out)
			}

			fmt.Fprint(out, d.Documentation(0))
		}

		return nil
	},
}

func init() {
	docsCmd.Flags().StringP("output-file", "f", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
