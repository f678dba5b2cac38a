// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

/*
Package lzav implements LZAV, an in-memory LZ77-family compressor and
decompressor. LZAV trades ratio for decompression speed and simplicity: a
single-pass greedy matcher with an adaptive skip throttle, a 2-way
fingerprint table instead of hash chains, and a decoder that bounds-checks
each block and then copies exactly its length; it does not use wide
fixed-size copies that run past a block's end.

Compression is non-streaming: both Compress and Decompress operate on
complete in-memory buffers. Multiple independent buffers may be
compressed or decompressed concurrently from separate goroutines with no
coordination required, as long as each call uses its own scratch memory
(see CompressOptions.ExtBuf).

# Compress

	dst := make([]byte, lzav.CompressBound(len(data)))
	n := lzav.CompressDefault(data, dst)
	compressed := dst[:n]

Or, with allocation handled for you:

	compressed, err := lzav.CompressBytes(data, nil)

# Decompress

	out := make([]byte, expectedLen)
	n, err := lzav.Decompress(compressed, out)

Or, with allocation handled for you:

	out, err := lzav.DecompressBytes(compressed, expectedLen)

From an io.Reader of known decompressed length:

	out, err := lzav.DecompressFromReader(r, expectedLen)
*/
package lzav
