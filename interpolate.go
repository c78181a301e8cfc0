package psd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-psd/series"
)

// Interpolate linearly resamples a PSD onto a new bin spacing covering the
// same frequency band. The output length is round(band/deltaF) + 1; query
// points beyond the input's final bin clamp to its value. Matched-filter
// pipelines use this to bring an estimate onto their analysis grid.
func Interpolate(psd *series.FrequencySeries, deltaF float64) (*series.FrequencySeries, error) {
	if psd == nil || len(psd.Data) == 0 {
		return nil, fmt.Errorf("%w: interpolation needs a non-empty psd", ErrConfig)
	}
	if psd.DeltaF <= 0 {
		return nil, fmt.Errorf("%w: psd bin spacing must be positive: %g", ErrConfig, psd.DeltaF)
	}
	if deltaF <= 0 {
		return nil, fmt.Errorf("%w: target bin spacing must be positive: %g", ErrConfig, deltaF)
	}

	band := float64(len(psd.Data)-1) * psd.DeltaF
	length := int(math.Round(band/deltaF)) + 1
	if length < 1 {
		length = 1
	}

	out := make([]float64, length)
	last := len(psd.Data) - 1
	for k := range out {
		pos := float64(k) * deltaF / psd.DeltaF
		j := int(pos)
		if j >= last {
			out[k] = psd.Data[last]
			continue
		}
		t := pos - float64(j)
		out[k] = psd.Data[j] + t*(psd.Data[j+1]-psd.Data[j])
	}

	return &series.FrequencySeries{Data: out, DeltaF: deltaF, Epoch: psd.Epoch}, nil
}
