// Package psdfile reads and writes two-column text tables of noise spectra,
// the format published detector sensitivity curves ship in.
//
// Each non-empty line holds a frequency in Hz and an amplitude or power
// spectral density value, whitespace separated, with strictly increasing
// frequencies; blank lines and # comments are skipped. Reading resamples the
// table onto a caller-supplied uniform grid by linear interpolation. Bins
// below the low frequency cutoff are zeroed and need no table coverage; any
// other bin outside the table's frequency span is an error, never an
// extrapolation.
package psdfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-psd/series"
)

var (
	// ErrFormat reports a syntactically malformed table.
	ErrFormat = errors.New("psdfile: malformed table")

	// ErrRange reports a grid bin outside the table's frequency coverage.
	ErrRange = errors.New("psdfile: frequency outside table coverage")
)

// FromASDText loads a (frequency, ASD) table from path and returns it
// squared, as a PSD on the grid 0, deltaF, ..., (length-1)*deltaF.
func FromASDText(path string, length int, deltaF, lowFreqCutoff float64) (*series.FrequencySeries, error) {
	return fromFile(path, length, deltaF, lowFreqCutoff, true)
}

// FromPSDText loads a (frequency, PSD) table from path onto the grid
// 0, deltaF, ..., (length-1)*deltaF.
func FromPSDText(path string, length int, deltaF, lowFreqCutoff float64) (*series.FrequencySeries, error) {
	return fromFile(path, length, deltaF, lowFreqCutoff, false)
}

func fromFile(path string, length int, deltaF, lowFreqCutoff float64, square bool) (*series.FrequencySeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("psdfile: %w", err)
	}
	defer f.Close()
	return fromReader(f, length, deltaF, lowFreqCutoff, square)
}

func fromReader(r io.Reader, length int, deltaF, lowFreqCutoff float64, square bool) (*series.FrequencySeries, error) {
	if length < 1 {
		return nil, fmt.Errorf("psdfile: length must be positive: %d", length)
	}
	if deltaF <= 0 {
		return nil, fmt.Errorf("psdfile: bin spacing must be > 0: %g", deltaF)
	}
	if lowFreqCutoff < 0 {
		return nil, fmt.Errorf("psdfile: low frequency cutoff must not be negative: %g", lowFreqCutoff)
	}

	freqs, values, err := parseTable(r)
	if err != nil {
		return nil, err
	}

	data := make([]float64, length)
	last := len(freqs) - 1
	for k := range data {
		f := float64(k) * deltaF
		if f < lowFreqCutoff {
			continue
		}
		if f < freqs[0] || f > freqs[last] {
			return nil, fmt.Errorf("%w: bin %d at %g Hz, table spans [%g, %g] Hz",
				ErrRange, k, f, freqs[0], freqs[last])
		}

		v := interpolate(freqs, values, f)
		if square {
			v *= v
		}
		data[k] = v
	}

	return &series.FrequencySeries{Data: data, DeltaF: deltaF}, nil
}

// interpolate evaluates the table at f, which must lie inside the table's
// frequency span. Exact nodes return their value untouched.
func interpolate(freqs, values []float64, f float64) float64 {
	j := sort.SearchFloat64s(freqs, f)
	if j < len(freqs) && freqs[j] == f {
		return values[j]
	}
	x0, x1 := freqs[j-1], freqs[j]
	t := (f - x0) / (x1 - x0)
	return values[j-1] + t*(values[j]-values[j-1])
}

func parseTable(r io.Reader) ([]float64, []float64, error) {
	var freqs, values []float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: line %d: expected 2 columns, got %d",
				ErrFormat, lineNo, len(fields))
		}

		freq, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
		}

		if len(freqs) > 0 && freq <= freqs[len(freqs)-1] {
			return nil, nil, fmt.Errorf("%w: line %d: frequencies must be strictly increasing",
				ErrFormat, lineNo)
		}
		freqs = append(freqs, freq)
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("psdfile: %w", err)
	}
	if len(freqs) == 0 {
		return nil, nil, fmt.Errorf("%w: empty table", ErrFormat)
	}
	return freqs, values, nil
}
