// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import (
	"bytes"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "single-byte", data: []byte{0xAB}},
		{name: "tiny", data: []byte("hi")},
		{name: "short-text", data: []byte("hello world, lzav test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "incompressible", data: pseudoRandomBytes(4096)},
	}
}

func pseudoRandomBytes(n int) []byte {
	b := make([]byte, n)
	x := uint32(0x2545F491)
	for i := range b {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b[i] = byte(x)
	}
	return b
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := CompressBytes(in.data, nil)
			if err != nil {
				t.Fatalf("CompressBytes failed: %v", err)
			}

			out, err := DecompressBytes(cmp, len(in.data))
			if err != nil {
				t.Fatalf("DecompressBytes failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}

			outReader, err := DecompressFromReader(bytes.NewReader(cmp), len(in.data))
			if err != nil {
				t.Fatalf("DecompressFromReader failed: %v", err)
			}
			if !bytes.Equal(outReader, in.data) {
				t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(outReader), len(in.data))
			}
		})
	}
}

func TestCompress_EmptyInputReturnsZero(t *testing.T) {
	dst := make([]byte, CompressBound(0))
	if n := Compress(nil, dst, nil); n != 0 {
		t.Fatalf("Compress(nil) = %d, want 0", n)
	}
}

func TestCompressBound_EmptyIsEight(t *testing.T) {
	if n := CompressBound(0); n != 8 {
		t.Fatalf("CompressBound(0) = %d, want 8", n)
	}
}

func TestCompress_DefaultMatchesExplicitNilExtBuf(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)
	dst1 := make([]byte, CompressBound(len(data)))
	dst2 := make([]byte, CompressBound(len(data)))

	n1 := CompressDefault(data, dst1)
	n2 := Compress(data, dst2, nil)

	if n1 != n2 || !bytes.Equal(dst1[:n1], dst2[:n2]) {
		t.Fatal("CompressDefault should match Compress(src, dst, nil)")
	}
}

func TestCompress_DeterministicAcrossCalls(t *testing.T) {
	data := bytes.Repeat([]byte("determinism-check"), 777)

	first, err := CompressBytes(data, nil)
	if err != nil {
		t.Fatalf("CompressBytes failed: %v", err)
	}
	second, err := CompressBytes(data, nil)
	if err != nil {
		t.Fatalf("CompressBytes failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("compression of identical input should be deterministic")
	}
}

func TestCompress_IncompressibleExpansionBounded(t *testing.T) {
	data := pseudoRandomBytes(1 << 16)

	cmp, err := CompressBytes(data, nil)
	if err != nil {
		t.Fatalf("CompressBytes failed: %v", err)
	}

	maxExpansion := len(data) + len(data)*3/litLen + 8
	if len(cmp) > maxExpansion {
		t.Fatalf("compressed size %d exceeds worst-case bound %d", len(cmp), maxExpansion)
	}
}

func TestCompress_ExtBufScratch(t *testing.T) {
	data := bytes.Repeat([]byte("ext-buf-path"), 5000)
	extBuf := make([]byte, maxTableSlots*slotBytes)

	dst := make([]byte, CompressBound(len(data)))
	n := Compress(data, dst, extBuf)
	if n == 0 {
		t.Fatal("Compress with extBuf returned 0")
	}

	out, err := DecompressBytes(dst[:n], len(data))
	if err != nil {
		t.Fatalf("DecompressBytes failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch using ExtBuf scratch")
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add([]byte{0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		dst := make([]byte, CompressBound(len(data)))
		n := Compress(data, dst, nil)
		if n == 0 {
			t.Fatalf("Compress failed for %d bytes", len(data))
		}

		out, err := DecompressBytes(dst[:n], len(data))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
