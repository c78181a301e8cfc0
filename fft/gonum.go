package fft

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

func init() {
	Register("gonum", 50, newGonumFFT)
}

// gonumFFT adapts gonum's real FFT. Coefficients already yields the one-sided
// half directly; Sequence is unnormalized, so the inverse divides by N to
// meet the package contract.
type gonumFFT struct {
	n   int
	fft *fourier.FFT
}

func newGonumFFT(n int) (Transformer, error) {
	return &gonumFFT{n: n, fft: fourier.NewFFT(n)}, nil
}

func (g *gonumFFT) Len() int  { return g.n }
func (g *gonumFFT) Bins() int { return g.n/2 + 1 }

func (g *gonumFFT) Forward(dst []complex128, src []float64) error {
	if err := checkForward(g.n, len(dst), len(src)); err != nil {
		return err
	}

	g.fft.Coefficients(dst, src)
	return nil
}

func (g *gonumFFT) Inverse(dst []float64, src []complex128) error {
	if err := checkInverse(g.n, len(dst), len(src)); err != nil {
		return err
	}

	g.fft.Sequence(dst, src)
	vecmath.ScaleBlockInPlace(dst, 1/float64(g.n))
	return nil
}
