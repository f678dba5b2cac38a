// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

// CompressOptions configures compression. ExtBuf, if set, is used as
// fingerprint-table scratch instead of allocating on the heap; it must be
// a power-of-two length and is not safe for concurrent reuse across
// simultaneous Compress calls.
type CompressOptions struct {
	ExtBuf []byte
}

// DefaultCompressOptions returns options with no caller-supplied scratch.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// CompressBytes allocates a destination sized by CompressBound and
// compresses src into it, returning the trimmed result.
func CompressBytes(src []byte, opts *CompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrParams
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dst := make([]byte, CompressBound(len(src)))
	n := Compress(src, dst, opts.ExtBuf)
	if n == 0 {
		return nil, ErrCompressInternal
	}

	return dst[:n], nil
}
