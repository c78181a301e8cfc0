package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-psd/analytical"
)

var (
	modelLength int
	modelDeltaF float64
	modelCutoff float64
	modelASD    bool
	modelOut    string
)

func init() {
	f := modelCmd.Flags()
	f.IntVar(&modelLength, "length", 1024, "number of frequency bins")
	f.Float64Var(&modelDeltaF, "delta-f", 0.25, "bin spacing in Hz")
	f.Float64Var(&modelCutoff, "low-freq-cutoff", 0, "zero bins below this frequency in Hz")
	f.BoolVar(&modelASD, "asd", false, "write amplitude (sqrt of PSD) instead of power")
	f.StringVar(&modelOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(modelCmd)
}

var modelCmd = &cobra.Command{
	Use:   "model <name>",
	Short: "Evaluate an analytical noise model on a frequency grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		psd, err := analytical.FromName(args[0], modelLength, modelDeltaF, modelCutoff)
		if err != nil {
			return err
		}
		log.Debugf("evaluated %q on %d bins at %g Hz spacing", args[0], psd.Len(), psd.DeltaF)

		return writeSeries(psd, modelOut, modelASD)
	},
}
