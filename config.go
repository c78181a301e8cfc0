package psd

import "fmt"

// Method selects how per-segment periodograms are combined into the estimate.
type Method string

const (
	// MethodMean averages periodograms arithmetically per bin.
	MethodMean Method = "mean"

	// MethodMedian takes the per-bin median across segments and divides by
	// the median bias factor for the segment count.
	MethodMedian Method = "median"

	// MethodMedianMean averages the bias-corrected medians of the even- and
	// odd-indexed segment groups. With an odd segment count the final
	// segment is dropped so the two groups stay the same size.
	MethodMedianMean Method = "median-mean"
)

// ParseMethod maps a method name to its Method value.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodMean, MethodMedian, MethodMedianMean:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown averaging method %q", ErrConfig, s)
}

// Config collects the Welch estimation parameters.
type Config struct {
	SegmentLength int    // samples per segment
	SegmentStride int    // samples between segment starts
	Method        Method // averaging strategy
	MaxFilterLen  int    // inverse-spectrum truncation length in samples, 0 disables

	// Window transforms a slice in place and returns it, the shape shared
	// by gonum's dsp/window functions. nil selects the Hann window.
	Window func([]float64) []float64

	FFTBackend string // named fft backend, "" selects automatically
	Workers    int    // parallel periodogram goroutines, <= 1 runs sequentially
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the estimation defaults: 4096-sample segments with
// 50% overlap, median averaging, Hann window, no truncation.
func DefaultConfig() Config {
	return Config{
		SegmentLength: 4096,
		SegmentStride: 2048,
		Method:        MethodMedian,
		Workers:       1,
	}
}

// WithSegmentLength sets the per-segment sample count.
func WithSegmentLength(n int) Option {
	return func(c *Config) { c.SegmentLength = n }
}

// WithSegmentStride sets the distance between segment starts. A stride below
// the segment length overlaps segments.
func WithSegmentStride(n int) Option {
	return func(c *Config) { c.SegmentStride = n }
}

// WithMethod sets the averaging strategy.
func WithMethod(m Method) Option {
	return func(c *Config) { c.Method = m }
}

// WithMaxFilterLen enables inverse-spectrum truncation of the estimate with
// the given kernel length in samples.
func WithMaxFilterLen(n int) Option {
	return func(c *Config) { c.MaxFilterLen = n }
}

// WithWindow sets the window function applied to each segment.
func WithWindow(win func([]float64) []float64) Option {
	return func(c *Config) { c.Window = win }
}

// WithFFTBackend forces a named transform backend instead of automatic
// selection.
func WithFFTBackend(name string) Option {
	return func(c *Config) { c.FFTBackend = name }
}

// WithWorkers distributes periodogram computation over n goroutines.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c Config) validate() error {
	if c.SegmentLength < 2 {
		return fmt.Errorf("%w: segment length must be at least 2: %d", ErrConfig, c.SegmentLength)
	}
	if c.SegmentLength%2 != 0 {
		return fmt.Errorf("%w: segment length must be even: %d", ErrConfig, c.SegmentLength)
	}
	if c.SegmentStride <= 0 {
		return fmt.Errorf("%w: segment stride must be positive: %d", ErrConfig, c.SegmentStride)
	}

	switch c.Method {
	case MethodMean, MethodMedian, MethodMedianMean:
	default:
		return fmt.Errorf("%w: unknown averaging method %q", ErrConfig, c.Method)
	}

	if c.MaxFilterLen < 0 {
		return fmt.Errorf("%w: max filter length must not be negative: %d", ErrConfig, c.MaxFilterLen)
	}
	if c.MaxFilterLen > c.SegmentLength {
		return fmt.Errorf("%w: max filter length %d exceeds segment length %d",
			ErrConfig, c.MaxFilterLen, c.SegmentLength)
	}
	return nil
}
