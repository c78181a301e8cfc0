// Command psdtool works with power spectral density estimates: it evaluates
// analytical detector noise models, Welch-estimates PSDs from recorded
// signals, and resamples published ASD/PSD tables onto new frequency grids.
//
// Usage:
//
//	psdtool models
//	psdtool model aligo --length 1024 --delta-f 0.25 --out aligo.txt
//	psdtool estimate noise.wav --seg-len 4096 --method median
//	psdtool estimate samples.txt --sample-rate 4096 --workers 4
//	psdtool resample curve.txt --length 1024 --delta-f 0.125 --asd
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
