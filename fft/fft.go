// Package fft defines the transform contract consumed by the estimator core
// and a registry of interchangeable real-FFT backends.
//
// The contract fixes the normalization convention. Forward computes the
// unnormalized one-sided DFT
//
//	X[k] = sum_{n=0}^{N-1} x[n] * exp(-2*pi*i*k*n/N),  k = 0 .. N/2
//
// and Inverse folds the 1/N factor in, so Inverse(Forward(x)) reproduces x up
// to rounding. Under this convention Parseval's identity reads
//
//	sum_n x[n]^2 = (1/N) * sum_k |X[k]|^2
//
// with the sum over the full two-sided spectrum; the periodogram scaling in
// the estimator assumes exactly this.
//
// Backends register themselves from init functions. Selection walks the
// registered backends in priority order and picks the first one that accepts
// the requested length, so an optimized power-of-two engine can sit in front
// of general-length fallbacks. Callers can force a backend by name.
package fft

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"
	"sync"
)

// Transformer computes fixed-length real-to-complex transforms and their
// inverses. Implementations hold scratch memory and are not safe for
// concurrent use; create one per goroutine.
type Transformer interface {
	// Len returns the time-domain transform length N. N is always even.
	Len() int

	// Bins returns the one-sided spectrum length N/2 + 1.
	Bins() int

	// Forward writes the unnormalized one-sided DFT of src (length N) into
	// dst (length N/2+1).
	Forward(dst []complex128, src []float64) error

	// Inverse writes the normalized Hermitian-symmetric inverse of src
	// (length N/2+1) into dst (length N). The imaginary parts of the zero
	// and Nyquist bins are ignored.
	Inverse(dst []float64, src []complex128) error
}

// Factory builds a Transformer for length n, or reports that the backend
// cannot serve that length.
type Factory func(n int) (Transformer, error)

// Errors returned by the backend registry.
var (
	ErrUnknownBackend = errors.New("fft: unknown backend")
	ErrNoBackend      = errors.New("fft: no backend accepts the requested length")
)

type backendEntry struct {
	name     string
	priority int
	factory  Factory
}

var (
	regMu   sync.RWMutex
	entries []backendEntry
)

// Register adds a named backend to the registry. Higher priority backends are
// tried first. Register is called from backend init functions; all
// registrations complete before the first lookup.
func Register(name string, priority int, factory Factory) {
	regMu.Lock()
	defer regMu.Unlock()

	entries = append(entries, backendEntry{name: name, priority: priority, factory: factory})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})
}

// New returns a Transformer for length n from the highest-priority backend
// that accepts it. n must be even and at least 2.
func New(n int) (Transformer, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	regMu.RLock()
	defer regMu.RUnlock()

	for _, e := range entries {
		tr, err := e.factory(n)
		if err == nil {
			return tr, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNoBackend, n)
}

// NewNamed returns a Transformer for length n from the named backend.
func NewNamed(name string, n int) (Transformer, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	regMu.RLock()
	defer regMu.RUnlock()

	for _, e := range entries {
		if e.name == name {
			return e.factory(n)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Backends returns the registered backend names in selection order.
func Backends() []string {
	regMu.RLock()
	defer regMu.RUnlock()

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func validateLength(n int) error {
	if n < 2 || n%2 != 0 {
		return fmt.Errorf("fft: transform length must be even and >= 2: %d", n)
	}
	return nil
}

func checkForward(n, dstLen, srcLen int) error {
	if srcLen != n {
		return fmt.Errorf("fft: forward input length %d, transform length %d", srcLen, n)
	}
	if dstLen != n/2+1 {
		return fmt.Errorf("fft: forward output length %d, want %d", dstLen, n/2+1)
	}
	return nil
}

func checkInverse(n, dstLen, srcLen int) error {
	if srcLen != n/2+1 {
		return fmt.Errorf("fft: inverse input length %d, want %d", srcLen, n/2+1)
	}
	if dstLen != n {
		return fmt.Errorf("fft: inverse output length %d, transform length %d", dstLen, n)
	}
	return nil
}

// expandHermitian fills a full two-sided spectrum from its one-sided half,
// forcing the zero and Nyquist bins real.
func expandHermitian(full, half []complex128) {
	n := len(full)
	full[0] = complex(real(half[0]), 0)
	full[n/2] = complex(real(half[n/2]), 0)
	for k := 1; k < n/2; k++ {
		full[k] = half[k]
		full[n-k] = cmplx.Conj(half[k])
	}
}
