// Package series provides the sampled-data container types shared by the
// estimator core, the analytical catalog, and the spectrum file readers.
//
// A TimeSeries is read-only to every consumer in this module; a
// FrequencySeries returned by any operation is treated as immutable by
// convention and is never aliased to caller-visible scratch memory.
package series

import "fmt"

// TimeSeries is a uniformly sampled real-valued signal.
type TimeSeries struct {
	Data   []float64 // samples, owned by the caller
	DeltaT float64   // sample spacing in seconds
	Epoch  float64   // start time in seconds
}

// NewTimeSeries wraps data as a time series with the given sample spacing.
func NewTimeSeries(data []float64, deltaT float64) (*TimeSeries, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("series: time series must not be empty")
	}
	if deltaT <= 0 {
		return nil, fmt.Errorf("series: sample spacing must be > 0: %g", deltaT)
	}
	return &TimeSeries{Data: data, DeltaT: deltaT}, nil
}

// Len returns the number of samples.
func (t *TimeSeries) Len() int { return len(t.Data) }

// SampleRate returns the sampling frequency in Hz.
func (t *TimeSeries) SampleRate() float64 { return 1 / t.DeltaT }

// Duration returns the spanned time in seconds.
func (t *TimeSeries) Duration() float64 { return float64(len(t.Data)) * t.DeltaT }

// FrequencySeries is a uniformly spaced sequence of real frequency-domain
// values indexed from zero frequency upward. For one-sided power spectral
// densities the final bin sits at the Nyquist frequency (Len()-1)*DeltaF.
type FrequencySeries struct {
	Data   []float64 // per-bin values
	DeltaF float64   // bin spacing in Hz
	Epoch  float64   // start time of the underlying data in seconds
}

// NewFrequencySeries wraps data as a frequency series with the given bin
// spacing.
func NewFrequencySeries(data []float64, deltaF float64) (*FrequencySeries, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("series: frequency series must not be empty")
	}
	if deltaF <= 0 {
		return nil, fmt.Errorf("series: bin spacing must be > 0: %g", deltaF)
	}
	return &FrequencySeries{Data: data, DeltaF: deltaF}, nil
}

// Len returns the number of frequency bins.
func (f *FrequencySeries) Len() int { return len(f.Data) }

// Nyquist returns the frequency of the final bin in Hz.
func (f *FrequencySeries) Nyquist() float64 {
	return float64(len(f.Data)-1) * f.DeltaF
}

// FrequencyAt returns the frequency of bin k in Hz.
func (f *FrequencySeries) FrequencyAt(k int) float64 { return float64(k) * f.DeltaF }

// Frequencies returns the full frequency grid as a new slice.
func (f *FrequencySeries) Frequencies() []float64 {
	out := make([]float64, len(f.Data))
	for k := range out {
		out[k] = float64(k) * f.DeltaF
	}
	return out
}

// Clone returns a deep copy sharing no memory with the receiver.
func (f *FrequencySeries) Clone() *FrequencySeries {
	data := make([]float64, len(f.Data))
	copy(data, f.Data)
	return &FrequencySeries{Data: data, DeltaF: f.DeltaF, Epoch: f.Epoch}
}
