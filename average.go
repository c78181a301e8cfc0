package psd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/montanaflynn/stats"
)

// MedianBias returns the expected value of the median of n independent
// unit-mean exponentially distributed samples,
//
//	1 + sum_{i=1}^{(n-1)/2} ( 1/(2i+1) - 1/(2i) )
//
// which is the factor by which a per-bin periodogram median underestimates
// the mean PSD. Dividing the median by it restores an unbiased estimate.
// The series converges to ln 2, used directly for n >= 1000.
func MedianBias(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: median bias sample count must be positive: %d", ErrConfig, n)
	}
	if n >= 1000 {
		return math.Ln2, nil
	}

	bias := 1.0
	for i := 1; i <= (n-1)/2; i++ {
		bias += 1/float64(2*i+1) - 1/float64(2*i)
	}
	return bias, nil
}

// average combines per-segment periodograms into a single PSD according to
// the configured method. Every periodogram must have the same bin count.
func average(method Method, pgrams [][]float64) ([]float64, error) {
	if len(pgrams) == 0 {
		return nil, fmt.Errorf("%w: no segments to average", ErrConfig)
	}

	switch method {
	case MethodMean:
		return meanAverage(pgrams), nil
	case MethodMedian:
		return medianAverage(pgrams)
	case MethodMedianMean:
		return medianMeanAverage(pgrams)
	}
	return nil, fmt.Errorf("%w: unknown averaging method %q", ErrConfig, method)
}

func meanAverage(pgrams [][]float64) []float64 {
	out := make([]float64, len(pgrams[0]))
	for _, p := range pgrams {
		vecmath.AddBlockInPlace(out, p)
	}
	vecmath.ScaleBlockInPlace(out, 1/float64(len(pgrams)))
	return out
}

func medianAverage(pgrams [][]float64) ([]float64, error) {
	if len(pgrams) < 2 {
		return nil, fmt.Errorf("%w: median averaging needs at least 2 segments, got %d",
			ErrConfig, len(pgrams))
	}

	bias, err := MedianBias(len(pgrams))
	if err != nil {
		return nil, err
	}

	out, err := binMedians(pgrams)
	if err != nil {
		return nil, err
	}
	vecmath.ScaleBlockInPlace(out, 1/bias)
	return out, nil
}

// medianMeanAverage splits the segments into even- and odd-indexed groups,
// corrects each group's per-bin median by the bias factor for the group
// size, and averages the two. An odd segment count drops the final segment
// first so both groups stay the same size.
func medianMeanAverage(pgrams [][]float64) ([]float64, error) {
	if len(pgrams) < 2 {
		return nil, fmt.Errorf("%w: median-mean averaging needs at least 2 segments, got %d",
			ErrConfig, len(pgrams))
	}
	if len(pgrams)%2 != 0 {
		pgrams = pgrams[:len(pgrams)-1]
	}

	even := make([][]float64, 0, len(pgrams)/2)
	odd := make([][]float64, 0, len(pgrams)/2)
	for i, p := range pgrams {
		if i%2 == 0 {
			even = append(even, p)
		} else {
			odd = append(odd, p)
		}
	}

	bias, err := MedianBias(len(even))
	if err != nil {
		return nil, err
	}

	evenMed, err := binMedians(even)
	if err != nil {
		return nil, err
	}
	oddMed, err := binMedians(odd)
	if err != nil {
		return nil, err
	}

	out := evenMed
	vecmath.AddBlockInPlace(out, oddMed)
	vecmath.ScaleBlockInPlace(out, 1/(2*bias))
	return out, nil
}

// binMedians computes the median across segments independently per bin.
func binMedians(pgrams [][]float64) ([]float64, error) {
	bins := len(pgrams[0])
	out := make([]float64, bins)
	column := make([]float64, len(pgrams))

	for k := 0; k < bins; k++ {
		for i, p := range pgrams {
			column[i] = p[k]
		}

		med, err := stats.Median(column)
		if err != nil {
			return nil, fmt.Errorf("psd: median at bin %d: %w", k, err)
		}
		out[k] = med
	}
	return out, nil
}
