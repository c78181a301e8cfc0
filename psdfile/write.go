package psdfile

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-psd/series"
)

// WritePSDText writes psd to w as a two-column (frequency, PSD) text table,
// one bin per line, readable again with FromPSDText.
func WritePSDText(w io.Writer, psd *series.FrequencySeries) error {
	return writeTable(w, psd, false)
}

// WriteASDText writes the amplitude spectral density sqrt(psd) to w as a
// two-column (frequency, ASD) text table, readable again with FromASDText.
func WriteASDText(w io.Writer, psd *series.FrequencySeries) error {
	return writeTable(w, psd, true)
}

func writeTable(w io.Writer, psd *series.FrequencySeries, sqrt bool) error {
	if psd == nil || len(psd.Data) == 0 {
		return fmt.Errorf("psdfile: cannot write an empty psd")
	}
	if psd.DeltaF <= 0 {
		return fmt.Errorf("psdfile: psd bin spacing must be positive: %g", psd.DeltaF)
	}

	bw := bufio.NewWriter(w)
	for k, v := range psd.Data {
		if sqrt {
			v = math.Sqrt(v)
		}
		fmt.Fprintf(bw, "%.18e %.18e\n", float64(k)*psd.DeltaF, v)
	}
	return bw.Flush()
}
