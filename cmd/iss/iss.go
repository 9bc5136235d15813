package iss

import (
	"github.com/spf13/cobra"
)

// IssCmd represents the iss command
var IssCmd = &cobra.Command{
	Use:   "iss",
	Short: "Decode instruction specific syndromes of trapped accesses",
}

func init() {
	IssCmd.AddCommand(decodeCmd)
}
