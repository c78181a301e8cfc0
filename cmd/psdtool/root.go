package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-psd/psdfile"
	"github.com/cwbudde/algo-psd/series"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "psdtool",
	Short: "Estimate, evaluate and resample power spectral densities",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// writeSeries writes psd as a two-column text table to path, or to stdout
// when path is empty.
func writeSeries(psd *series.FrequencySeries, path string, asASD bool) error {
	write := psdfile.WritePSDText
	if asASD {
		write = psdfile.WriteASDText
	}

	if path == "" {
		return write(os.Stdout, psd)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, psd); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
