package psd

import "errors"

// ErrConfig is the base error for rejected estimation parameters: segment
// geometry, averaging method, window, or truncation length. Detailed causes
// wrap it, so callers match with errors.Is.
var ErrConfig = errors.New("psd: invalid configuration")
