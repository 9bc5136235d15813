package regs

import (
	"fmt"

	"github.com/Manu343726/sysregs/cmd/output"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg/regs"
	"github.com/Manu343726/sysregs/pkg/utils"
	"github.com/spf13/cobra"
)

type listedRegister struct {
	Name        string   `yaml:"name"`
	Bits        int      `yaml:"bits"`
	Access      string   `yaml:"access"`
	Description string   `yaml:"description"`
	Fields      []string `yaml:"fields,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported registers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.CurrentFormat()
		if err != nil {
			return err
		}

		listed := utils.Map(regs.All(), func(d regs.Descriptor) listedRegister {
			return listedRegister{
				Name:        d.Name(),
				Bits:        d.Bits(),
				Access:      d.Capability().String(),
				Description: d.Description(),
				Fields:      d.Fields(),
			}
		})

		out := cmd.OutOrStdout()

		if format == output.Format_Yaml {
			return output.WriteYaml(out, listed)
		}

		for _, r := range listed {
			fmt.Fprintf(out, "%v %2v bits %v  %v\n", output.RegisterColor.Sprintf("%-10v", r.Name), r.Bits, r.Access, r.Description)
		}

		return nil
	},
}
