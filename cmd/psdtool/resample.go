package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-psd/psdfile"
)

var (
	resLength   int
	resDeltaF   float64
	resCutoff   float64
	resPSDInput bool
	resASD      bool
	resOut      string
)

func init() {
	f := resampleCmd.Flags()
	f.IntVar(&resLength, "length", 0, "number of output bins")
	f.Float64Var(&resDeltaF, "delta-f", 0, "output bin spacing in Hz")
	f.Float64Var(&resCutoff, "low-freq-cutoff", 0, "zero bins below this frequency in Hz")
	f.BoolVar(&resPSDInput, "psd-input", false, "input values are power rather than amplitude")
	f.BoolVar(&resASD, "asd", false, "write amplitude (sqrt of PSD) instead of power")
	f.StringVar(&resOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(resampleCmd)
}

var resampleCmd = &cobra.Command{
	Use:   "resample <table.txt>",
	Short: "Resample a published ASD/PSD table onto a new frequency grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if resLength <= 0 || resDeltaF <= 0 {
			return fmt.Errorf("resample needs --length and --delta-f")
		}

		read := psdfile.FromASDText
		if resPSDInput {
			read = psdfile.FromPSDText
		}
		psd, err := read(args[0], resLength, resDeltaF, resCutoff)
		if err != nil {
			return err
		}
		log.Debugf("%s: resampled onto %d bins at %g Hz spacing", args[0], psd.Len(), psd.DeltaF)

		return writeSeries(psd, resOut, resASD)
	},
}
