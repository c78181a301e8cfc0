package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-psd/fft"
)

// DeterministicSine generates a sine wave at freqHz.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// ColoredNoise synthesizes Gaussian noise whose one-sided PSD follows the
// model, by drawing complex spectral amplitudes with per-bin variance
// matched to model(f) and inverse transforming. The seed fixes the draw, so
// a given call is reproducible. length must be even.
//
// The per-bin amplitude scale is sqrt(model(f)*sampleRate*length)/2: a
// periodogram of the returned samples under the estimator's normalization
// then has expectation model(f) at every interior bin.
func ColoredNoise(t *testing.T, seed int64, length int, sampleRate float64, model func(f float64) float64) []float64 {
	t.Helper()

	tr, err := fft.New(length)
	if err != nil {
		t.Fatalf("ColoredNoise: %v", err)
	}

	bins := length/2 + 1
	deltaF := sampleRate / float64(length)
	scale := 0.5 * math.Sqrt(sampleRate*float64(length))
	rng := rand.New(rand.NewSource(seed))

	spec := make([]complex128, bins)
	for k := range spec {
		amp := scale * math.Sqrt(model(float64(k)*deltaF))
		spec[k] = complex(amp*rng.NormFloat64(), amp*rng.NormFloat64())
	}

	// Real time series: the zero and Nyquist bins carry no phase.
	spec[0] = complex(real(spec[0]), 0)
	spec[bins-1] = complex(real(spec[bins-1]), 0)

	out := make([]float64, length)
	if err := tr.Inverse(out, spec); err != nil {
		t.Fatalf("ColoredNoise: %v", err)
	}
	return out
}
