package psd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-psd/series"
)

// InverseSpectrumTruncation smooths a PSD estimate by limiting the
// time-domain support of its whitening kernel. The inverse amplitude
// spectrum 1/sqrt(psd) is taken to the time domain, every sample outside a
// centered window of maxFilterLen samples is zeroed, and the result is
// transformed back; the output is 1/|Q[k]|^2 of the truncated kernel's
// spectrum Q. Shortening the kernel this way trades frequency resolution for
// freedom from the ringing a raw estimate leaks into filters built from it.
//
// Bins below lowFreqCutoff are zeroed before and after the round trip, and
// zero-power input bins propagate as zeros rather than failing. A
// maxFilterLen of zero skips the round trip entirely, leaving only the
// cutoff zeroing; a value of 2*(len-1) keeps the full kernel and returns the
// input up to rounding, except at the Nyquist bin, which the kernel carries
// no content for and which comes back zero. The input series is never
// modified.
func InverseSpectrumTruncation(psd *series.FrequencySeries, maxFilterLen int, lowFreqCutoff float64) (*series.FrequencySeries, error) {
	return inverseSpectrumTruncation(psd, maxFilterLen, lowFreqCutoff, "")
}

func inverseSpectrumTruncation(psd *series.FrequencySeries, maxFilterLen int, lowFreqCutoff float64, backend string) (*series.FrequencySeries, error) {
	if psd == nil || len(psd.Data) < 2 {
		return nil, fmt.Errorf("%w: truncation needs a psd with at least 2 bins", ErrConfig)
	}
	if psd.DeltaF <= 0 {
		return nil, fmt.Errorf("%w: psd bin spacing must be positive: %g", ErrConfig, psd.DeltaF)
	}
	if lowFreqCutoff < 0 {
		return nil, fmt.Errorf("%w: low frequency cutoff must not be negative: %g", ErrConfig, lowFreqCutoff)
	}

	bins := len(psd.Data)
	n := 2 * (bins - 1)
	if maxFilterLen < 0 || maxFilterLen > n {
		return nil, fmt.Errorf("%w: max filter length must be in [0, %d]: %d", ErrConfig, n, maxFilterLen)
	}

	out := psd.Clone()
	zeroBelowCutoff(out.Data, out.DeltaF, lowFreqCutoff)
	if maxFilterLen == 0 {
		return out, nil
	}

	tr, err := newTransformer(backend, n)
	if err != nil {
		return nil, err
	}

	// Whitening kernel spectrum: zero below the cutoff, at the Nyquist bin,
	// and wherever the input carries no power.
	inv := make([]complex128, bins)
	for k, v := range out.Data {
		if v > 0 && k < bins-1 {
			inv[k] = complex(1/math.Sqrt(v), 0)
		}
	}

	kernel := make([]float64, n)
	if err := tr.Inverse(kernel, inv); err != nil {
		return nil, err
	}

	// The kernel is in wraparound order, so the centered window keeps the
	// first and last maxFilterLen/2 samples.
	keep := maxFilterLen / 2
	for i := keep; i < n-keep; i++ {
		kernel[i] = 0
	}

	spec := make([]complex128, bins)
	if err := tr.Forward(spec, kernel); err != nil {
		return nil, err
	}

	for k, c := range spec {
		power := real(c)*real(c) + imag(c)*imag(c)
		if power > 0 {
			out.Data[k] = 1 / power
		} else {
			out.Data[k] = 0
		}
	}
	zeroBelowCutoff(out.Data, out.DeltaF, lowFreqCutoff)
	return out, nil
}

// zeroBelowCutoff zeroes every bin whose frequency is below cutoff. The grid
// ascends, so the scan stops at the first bin at or above it.
func zeroBelowCutoff(data []float64, deltaF, cutoff float64) {
	for k := range data {
		if float64(k)*deltaF >= cutoff {
			return
		}
		data[k] = 0
	}
}
