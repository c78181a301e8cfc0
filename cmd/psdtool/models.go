package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-psd/analytical"
)

func init() {
	rootCmd.AddCommand(modelsCmd)
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the analytical noise models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Model\tPSD @ 100 Hz [1/Hz]\n")
		fmt.Fprintf(tw, "-----\t-------------------\n")

		for _, name := range analytical.Models() {
			psd, err := analytical.FromName(name, 2, 100, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%.6e\n", name, psd.Data[1])
		}
		return tw.Flush()
	},
}
