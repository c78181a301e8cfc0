package psd

import "fmt"

// NumSegments returns how many full segments of segLen samples fit in a
// series of n samples when segments start every stride samples. The trailing
// partial segment, if any, does not count.
func NumSegments(n, segLen, stride int) (int, error) {
	if segLen <= 0 {
		return 0, fmt.Errorf("%w: segment length must be positive: %d", ErrConfig, segLen)
	}
	if stride <= 0 {
		return 0, fmt.Errorf("%w: segment stride must be positive: %d", ErrConfig, stride)
	}
	if segLen > n {
		return 0, fmt.Errorf("%w: segment length %d exceeds series length %d", ErrConfig, segLen, n)
	}
	return (n-segLen)/stride + 1, nil
}

// Offsets returns the start offset of every full segment of segLen samples
// placed every stride samples in a series of n samples. There is no zero
// padding; the offsets are 0, stride, 2*stride and so on.
func Offsets(n, segLen, stride int) ([]int, error) {
	count, err := NumSegments(n, segLen, stride)
	if err != nil {
		return nil, err
	}

	offsets := make([]int, count)
	for i := range offsets {
		offsets[i] = i * stride
	}
	return offsets, nil
}
