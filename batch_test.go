// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import (
	"bytes"
	"testing"
)

func TestCompressAllDecompressAll_RoundTrip(t *testing.T) {
	var buffers [][]byte
	for _, in := range testInputSet() {
		buffers = append(buffers, in.data)
	}

	compressed, err := CompressAll(buffers)
	if err != nil {
		t.Fatalf("CompressAll failed: %v", err)
	}
	if len(compressed) != len(buffers) {
		t.Fatalf("got %d results, want %d", len(compressed), len(buffers))
	}

	jobs := make([]DecompressJob, len(buffers))
	for i, buf := range buffers {
		jobs[i] = DecompressJob{Data: compressed[i], Len: len(buf)}
	}

	decompressed, err := DecompressAll(jobs)
	if err != nil {
		t.Fatalf("DecompressAll failed: %v", err)
	}

	for i, buf := range buffers {
		if !bytes.Equal(decompressed[i], buf) {
			t.Fatalf("buffer %d round-trip mismatch", i)
		}
	}
}

func TestCompressAll_EmptyBufferFails(t *testing.T) {
	buffers := [][]byte{[]byte("fine"), nil, []byte("also fine")}

	if _, err := CompressAll(buffers); err == nil {
		t.Fatal("expected an error for an empty buffer in the batch")
	}
}

func TestDecompressAll_CorruptJobFails(t *testing.T) {
	good, err := CompressBytes([]byte("a perfectly good buffer"), nil)
	if err != nil {
		t.Fatalf("CompressBytes failed: %v", err)
	}

	jobs := []DecompressJob{
		{Data: good, Len: len("a perfectly good buffer")},
		{Data: []byte{0xFF}, Len: 10},
	}

	if _, err := DecompressAll(jobs); err == nil {
		t.Fatal("expected an error for a corrupt job in the batch")
	}
}
