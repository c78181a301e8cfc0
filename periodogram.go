package psd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-psd/fft"
)

// periodogrammer computes one-sided periodograms of windowed segments. It
// owns its transformer and scratch memory, so parallel estimation gives each
// worker its own instance.
type periodogrammer struct {
	tr     fft.Transformer
	window []float64
	scale  float64
	buf    []float64
	spec   []complex128
	re     []float64
	im     []float64
}

func newPeriodogrammer(tr fft.Transformer, window []float64, sampleRate float64) *periodogrammer {
	sumSq := 0.0
	for _, w := range window {
		sumSq += w * w
	}

	bins := tr.Bins()
	return &periodogrammer{
		tr:     tr,
		window: window,
		scale:  2 / (sampleRate * sumSq),
		buf:    make([]float64, tr.Len()),
		spec:   make([]complex128, bins),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
	}
}

// compute writes the one-sided PSD estimate of a single segment into dst, in
// units of signal^2/Hz. dst and the segment must match the transformer's bin
// count and length.
func (p *periodogrammer) compute(dst, segment []float64) error {
	vecmath.MulBlock(p.buf, segment, p.window)

	if err := p.tr.Forward(p.spec, p.buf); err != nil {
		return err
	}

	for i, c := range p.spec {
		p.re[i] = real(c)
		p.im[i] = imag(c)
	}
	vecmath.Power(dst, p.re, p.im)
	vecmath.ScaleBlockInPlace(dst, p.scale)

	// One-sided folding doubles every bin except the zero and Nyquist bins.
	// The scale already carries the factor of two, so those two are halved.
	dst[0] /= 2
	dst[len(dst)-1] /= 2
	return nil
}

// windowCoefficients materializes a window function by applying it to a ones
// vector, the shape gonum's dsp/window functions share.
func windowCoefficients(win func([]float64) []float64, n int) ([]float64, error) {
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = 1
	}

	out := win(coeffs)
	if len(out) != n {
		return nil, fmt.Errorf("%w: window function changed length %d -> %d", ErrConfig, n, len(out))
	}

	sumSq := 0.0
	for _, w := range out {
		sumSq += w * w
	}
	if sumSq <= 0 || math.IsNaN(sumSq) || math.IsInf(sumSq, 0) {
		return nil, fmt.Errorf("%w: window power must be positive and finite", ErrConfig)
	}
	return out, nil
}
