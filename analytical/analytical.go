// Package analytical evaluates published closed-form fits of detector noise
// power spectral densities on uniform frequency grids.
//
// Each catalog entry is a one-sided strain noise PSD in 1/Hz as a function
// of frequency in Hz. The fits diverge at zero frequency, so the
// zero-frequency bin of every returned series reuses the value of the first
// non-zero bin.
package analytical

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-psd/series"
)

// ErrUnknownModel reports a request for a model name the catalog does not
// carry.
var ErrUnknownModel = errors.New("analytical: unknown model")

// model evaluates a one-sided PSD fit at a frequency in Hz.
type model func(f float64) float64

var catalog = map[string]model{
	"aligo":      aligo,
	"iligo":      iligo,
	"virgo":      virgo,
	"geo600":     geo600,
	"tama300":    tama300,
	"et-b":       etb,
	"flat-unity": flatUnity,
}

// Models returns the available model names in sorted order.
func Models() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromName evaluates the named model on the grid 0, deltaF, ...,
// (length-1)*deltaF and returns it as a frequency series. Bins below
// lowFreqCutoff are zeroed after evaluation. Unknown names report
// ErrUnknownModel.
func FromName(name string, length int, deltaF, lowFreqCutoff float64) (*series.FrequencySeries, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	if length < 1 {
		return nil, fmt.Errorf("analytical: length must be positive: %d", length)
	}
	if deltaF <= 0 {
		return nil, fmt.Errorf("analytical: bin spacing must be > 0: %g", deltaF)
	}
	if lowFreqCutoff < 0 {
		return nil, fmt.Errorf("analytical: low frequency cutoff must not be negative: %g", lowFreqCutoff)
	}

	data := make([]float64, length)
	for k := range data {
		f := float64(k) * deltaF
		if k == 0 {
			f = deltaF
		}
		data[k] = fn(f)
	}
	for k := range data {
		if float64(k)*deltaF >= lowFreqCutoff {
			break
		}
		data[k] = 0
	}

	return &series.FrequencySeries{Data: data, DeltaF: deltaF}, nil
}

// aligo is the advanced LIGO design sensitivity fit with f0 = 215 Hz.
func aligo(f float64) float64 {
	x := f / 215
	x2 := x * x
	return 1e-49 * (math.Pow(x, -4.14) - 5/x2 +
		111*(1-x2+x2*x2/2)/(1+x2/2))
}

// iligo is the initial LIGO fit with f0 = 150 Hz.
func iligo(f float64) float64 {
	x := f / 150
	return 9e-46 * (math.Pow(4.49*x, -56) + 0.16*math.Pow(x, -4.52) +
		0.52 + 0.32*x*x)
}

// virgo is the initial Virgo fit with f0 = 500 Hz.
func virgo(f float64) float64 {
	x := f / 500
	return 3.24e-46 * (math.Pow(6.23*x, -5) + 2/x + 1 + x*x)
}

// geo600 is the GEO600 fit with f0 = 150 Hz.
func geo600(f float64) float64 {
	x := f / 150
	x2 := x * x
	return 1e-46 * (math.Pow(3.4*x, -30) + 34/x +
		20*(1-x2+x2*x2/2)/(1+x2/2))
}

// tama300 is the TAMA300 fit with f0 = 400 Hz.
func tama300(f float64) float64 {
	x := f / 400
	return 75e-46 * (math.Pow(x, -5) + 13/x + 9*(1+x*x))
}

// etb is the Einstein Telescope ET-B fit with f0 = 100 Hz.
func etb(f float64) float64 {
	x := f / 100
	h := 2.39e-27*math.Pow(x, -15.64) + 0.349*math.Pow(x, -2.145) +
		1.76*math.Pow(x, -0.12) + 0.409*math.Pow(x, 2.12)
	return 1e-50 * h * h
}

// flatUnity is a unit PSD for tests and whitening identities.
func flatUnity(float64) float64 { return 1 }
