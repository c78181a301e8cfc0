package fft

import (
	godsp "github.com/mjibson/go-dsp/fft"
)

func init() {
	Register("godsp", 10, newGoDSP)
}

// goDSP adapts mjibson/go-dsp, which handles arbitrary lengths via Bluestein
// and therefore serves as the registry's last-resort fallback. FFTReal is
// unnormalized; IFFT divides by N, matching the package contract as-is.
type goDSP struct {
	n    int
	full []complex128
}

func newGoDSP(n int) (Transformer, error) {
	return &goDSP{n: n, full: make([]complex128, n)}, nil
}

func (d *goDSP) Len() int  { return d.n }
func (d *goDSP) Bins() int { return d.n/2 + 1 }

func (d *goDSP) Forward(dst []complex128, src []float64) error {
	if err := checkForward(d.n, len(dst), len(src)); err != nil {
		return err
	}

	out := godsp.FFTReal(src)
	copy(dst, out[:d.n/2+1])
	return nil
}

func (d *goDSP) Inverse(dst []float64, src []complex128) error {
	if err := checkInverse(d.n, len(dst), len(src)); err != nil {
		return err
	}

	expandHermitian(d.full, src)
	out := godsp.IFFT(d.full)
	for i := range dst {
		dst[i] = real(out[i])
	}
	return nil
}
