// Package psd estimates one-sided power spectral densities of uniformly
// sampled real-valued signals using Welch's method.
//
// The estimator splits the input into overlapping windowed segments, computes
// one periodogram per segment, and combines them per frequency bin with one
// of three strategies:
//
//   - mean: the classic Welch average, lowest variance on stationary noise
//   - median: robust against loud transients, corrected by the median bias
//     factor so the estimate stays unbiased
//   - median-mean: medians over two interleaved segment groups, averaged;
//     robust against a single glitch without the median's full variance cost
//
// An optional inverse-spectrum truncation pass limits the time-domain support
// of the estimate's whitening kernel, which suppresses the ringing a noisy
// estimate would otherwise leak into matched filters built from it.
//
// # Usage
//
//	ts, _ := series.NewTimeSeries(samples, 1.0/4096)
//	estimate, err := psd.Welch(ts,
//		psd.WithSegmentLength(4096),
//		psd.WithSegmentStride(2048),
//		psd.WithMethod(psd.MethodMedianMean),
//	)
//
// Reference detector noise curves are generated by the analytical subpackage;
// tabulated spectra load through the psdfile subpackage. FFT execution is
// delegated to the fft subpackage's backend registry, so the estimator never
// depends on a particular transform engine.
package psd
