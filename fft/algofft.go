package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

func init() {
	Register("algofft", 100, newAlgoFFT)
}

// algoFFT wraps an algo-fft complex plan, packing real input into complex
// scratch and unpacking the one-sided half. Plans only accept power-of-two
// lengths, which keeps this backend at the front of the registry for the
// segment sizes the estimator defaults to.
type algoFFT struct {
	n    int
	plan *algofft.Plan[complex128]
	time []complex128
	freq []complex128
}

func newAlgoFFT(n int) (Transformer, error) {
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("fft: algofft backend requires a power-of-two length: %d", n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create algofft plan: %w", err)
	}

	return &algoFFT{
		n:    n,
		plan: plan,
		time: make([]complex128, n),
		freq: make([]complex128, n),
	}, nil
}

func (a *algoFFT) Len() int  { return a.n }
func (a *algoFFT) Bins() int { return a.n/2 + 1 }

func (a *algoFFT) Forward(dst []complex128, src []float64) error {
	if err := checkForward(a.n, len(dst), len(src)); err != nil {
		return err
	}

	for i, v := range src {
		a.time[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.freq, a.time); err != nil {
		return fmt.Errorf("fft: algofft forward failed: %w", err)
	}

	copy(dst, a.freq[:a.n/2+1])
	return nil
}

func (a *algoFFT) Inverse(dst []float64, src []complex128) error {
	if err := checkInverse(a.n, len(dst), len(src)); err != nil {
		return err
	}

	expandHermitian(a.freq, src)

	if err := a.plan.Inverse(a.time, a.freq); err != nil {
		return fmt.Errorf("fft: algofft inverse failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(a.time[i])
	}
	return nil
}
