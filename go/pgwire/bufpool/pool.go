// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bufpool recycles byte buffers across power-of-two size
// buckets, so read loops that pull protocol streams in chunks do not
// allocate per chunk.
package bufpool

import "sync"

// Pool holds one sync.Pool per power-of-two size class between minSize
// and maxSize.
type Pool struct {
	minSize int
	maxSize int
	buckets []*sync.Pool
}

// New creates a pool with size classes minSize, minSize*2, ..., maxSize.
// maxSize is rounded up to the next class boundary if needed.
func New(minSize, maxSize int) *Pool {
	if maxSize < minSize {
		panic("bufpool: maxSize must be >= minSize")
	}

	p := &Pool{minSize: minSize, maxSize: maxSize}
	for size := minSize; ; size *= 2 {
		size := size
		p.buckets = append(p.buckets, &sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		})
		if size >= maxSize {
			p.maxSize = size
			break
		}
	}
	return p
}

// bucketFor returns the index of the smallest size class holding size
// bytes, or -1 when size exceeds the largest class.
func (p *Pool) bucketFor(size int) int {
	if size > p.maxSize {
		return -1
	}
	idx := 0
	for class := p.minSize; class < size; class *= 2 {
		idx++
	}
	return idx
}

// Get returns a pointer to a byte slice of length size. Buffers larger
// than the biggest size class are heap-allocated and will not be pooled
// on Put.
func (p *Pool) Get(size int) *[]byte {
	idx := p.bucketFor(size)
	if idx < 0 {
		buf := make([]byte, size)
		return &buf
	}
	buf := p.buckets[idx].Get().(*[]byte)
	*buf = (*buf)[:size]
	return buf
}

// Put returns a buffer to its size class for reuse. Buffers whose
// capacity matches no class are discarded. The caller must not use the
// buffer after Put.
func (p *Pool) Put(buf *[]byte) {
	c := cap(*buf)
	idx := p.bucketFor(c)
	if idx < 0 || classSize(p.minSize, idx) != c {
		return
	}
	*buf = (*buf)[:c]
	p.buckets[idx].Put(buf)
}

func classSize(minSize, idx int) int {
	return minSize << idx
}
