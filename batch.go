// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import "golang.org/x/sync/errgroup"

// DecompressJob pairs a compressed stream with the length of its
// uncompressed payload, as required by DecompressAll.
type DecompressJob struct {
	Data []byte
	Len  int
}

// CompressAll compresses each buffer concurrently, one goroutine per buffer,
// each with its own fingerprint-table scratch. Every buffer is processed
// even after one fails; the remaining work is not cancelled. If any buffer
// fails, the first error is returned with a nil result slice.
func CompressAll(buffers [][]byte) ([][]byte, error) {
	results := make([][]byte, len(buffers))

	var g errgroup.Group
	for i, buf := range buffers {
		i, buf := i, buf
		g.Go(func() error {
			cmp, err := CompressBytes(buf, nil)
			if err != nil {
				return err
			}
			results[i] = cmp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DecompressAll decompresses each job concurrently, one goroutine per job,
// each with its own destination buffer. Every job is processed even after
// one fails; the remaining work is not cancelled. If any job fails, the
// first error is returned with a nil result slice.
func DecompressAll(jobs []DecompressJob) ([][]byte, error) {
	results := make([][]byte, len(jobs))

	var g errgroup.Group
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			out, err := DecompressBytes(job.Data, job.Len)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
