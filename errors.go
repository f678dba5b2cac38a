// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import "errors"

// Sentinel errors returned by Compress/Decompress and their convenience
// wrappers. Decoder errors mirror the six structural conditions the format
// distinguishes; callers should compare with errors.Is.
var (
	// ErrParams is returned when the caller passes malformed arguments:
	// an empty source to CompressBytes, an empty destination for a
	// nonempty stream (or the reverse), or a negative length. A destination
	// that is nonempty but too short is reported as ErrDstOOB instead.
	ErrParams = errors.New("lzav: invalid parameters")
	// ErrSrcOOB is returned when the decoder would read past the end of src.
	ErrSrcOOB = errors.New("lzav: source buffer out of bounds")
	// ErrDstOOB is returned when the decoder would write past the end of dst.
	ErrDstOOB = errors.New("lzav: destination buffer out of bounds")
	// ErrRefOOB is returned when a back-reference points before the start of dst.
	ErrRefOOB = errors.New("lzav: back-reference out of bounds")
	// ErrDstLen is returned when decoding finishes without filling dst exactly.
	ErrDstLen = errors.New("lzav: decompressed length does not match destination")
	// ErrUnkFmt is returned when the prefix byte's high nibble names an
	// unsupported stream format.
	ErrUnkFmt = errors.New("lzav: unknown stream format")

	// ErrCompressInternal is returned when the compressor hits an internal
	// invariant violation. A correct implementation never returns this;
	// callers can check it with errors.Is(err, lzav.ErrCompressInternal).
	ErrCompressInternal = errors.New("lzav: internal compressor invariant violated")
)
