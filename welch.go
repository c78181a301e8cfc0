package psd

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/window"

	"github.com/cwbudde/algo-psd/fft"
	"github.com/cwbudde/algo-psd/series"
)

// Welch estimates the one-sided PSD of ts by Welch's method: overlapping
// windowed segments, one periodogram each, combined per bin by the
// configured averaging strategy. The returned series has
// DeltaF = sampleRate / segmentLength and segmentLength/2 + 1 bins.
//
// The call either returns a complete estimate or an error; it never mutates
// ts and keeps no state between calls.
func Welch(ts *series.TimeSeries, opts ...Option) (*series.FrequencySeries, error) {
	if ts == nil || len(ts.Data) == 0 {
		return nil, fmt.Errorf("%w: time series must not be empty", ErrConfig)
	}
	if ts.DeltaT <= 0 {
		return nil, fmt.Errorf("%w: time series sample spacing must be positive: %g", ErrConfig, ts.DeltaT)
	}

	cfg := applyOptions(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	offsets, err := Offsets(len(ts.Data), cfg.SegmentLength, cfg.SegmentStride)
	if err != nil {
		return nil, err
	}

	win := cfg.Window
	if win == nil {
		win = window.Hann
	}
	coeffs, err := windowCoefficients(win, cfg.SegmentLength)
	if err != nil {
		return nil, err
	}

	sampleRate := ts.SampleRate()
	pgrams, err := segmentPeriodograms(ts.Data, offsets, cfg, coeffs, sampleRate)
	if err != nil {
		return nil, err
	}

	avg, err := average(cfg.Method, pgrams)
	if err != nil {
		return nil, err
	}

	estimate := &series.FrequencySeries{
		Data:   avg,
		DeltaF: sampleRate / float64(cfg.SegmentLength),
		Epoch:  ts.Epoch,
	}

	if cfg.MaxFilterLen > 0 {
		return inverseSpectrumTruncation(estimate, cfg.MaxFilterLen, 0, cfg.FFTBackend)
	}
	return estimate, nil
}

// segmentPeriodograms computes one periodogram per segment offset. Results
// are indexed by segment number, so the averaging input is identical whether
// segments run sequentially or across workers.
func segmentPeriodograms(data []float64, offsets []int, cfg Config, coeffs []float64, sampleRate float64) ([][]float64, error) {
	bins := cfg.SegmentLength/2 + 1
	out := make([][]float64, len(offsets))

	workers := cfg.Workers
	if workers > len(offsets) {
		workers = len(offsets)
	}

	if workers <= 1 {
		tr, err := newTransformer(cfg.FFTBackend, cfg.SegmentLength)
		if err != nil {
			return nil, err
		}

		pg := newPeriodogrammer(tr, coeffs, sampleRate)
		for i, off := range offsets {
			dst := make([]float64, bins)
			if err := pg.compute(dst, data[off:off+cfg.SegmentLength]); err != nil {
				return nil, err
			}
			out[i] = dst
		}
		return out, nil
	}

	// Transformers hold scratch and are not concurrency-safe, so every
	// worker builds its own and drains a shared index channel. The channel
	// is filled up front so a worker failing early never blocks the rest.
	jobs := make(chan int, len(offsets))
	for i := range offsets {
		jobs <- i
	}
	close(jobs)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			tr, err := newTransformer(cfg.FFTBackend, cfg.SegmentLength)
			if err != nil {
				return err
			}

			pg := newPeriodogrammer(tr, coeffs, sampleRate)
			for i := range jobs {
				dst := make([]float64, bins)
				if err := pg.compute(dst, data[offsets[i]:offsets[i]+cfg.SegmentLength]); err != nil {
					return err
				}
				out[i] = dst
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func newTransformer(backend string, n int) (fft.Transformer, error) {
	if backend != "" {
		return fft.NewNamed(backend, n)
	}
	return fft.New(n)
}
