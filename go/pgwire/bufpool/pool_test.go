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

package bufpool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPut(t *testing.T) {
	pool := New(1024, 16384)

	buf := pool.Get(2048)
	require.NotNil(t, buf)
	assert.Equal(t, 2048, len(*buf), "length is the requested size")
	assert.Equal(t, 2048, cap(*buf), "capacity is the size class")

	pool.Put(buf)

	buf2 := pool.Get(2048)
	require.NotNil(t, buf2)
	assert.Equal(t, 2048, len(*buf2))
}

func TestSizeClassSelection(t *testing.T) {
	// Classes: 1024, 2048, 4096, 8192, 16384.
	pool := New(1024, 16384)

	tests := []struct {
		name          string
		requestSize   int
		expectedClass int
	}{
		{"below smallest class", 100, 1024},
		{"exact class 1024", 1024, 1024},
		{"just over 1024", 1025, 2048},
		{"between classes", 3000, 4096},
		{"exact class 16384", 16384, 16384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := pool.Get(tt.requestSize)
			require.NotNil(t, buf)
			assert.Equal(t, tt.requestSize, len(*buf))
			assert.Equal(t, tt.expectedClass, cap(*buf))
			pool.Put(buf)
		})
	}
}

func TestOversizeAllocatesDirectly(t *testing.T) {
	pool := New(1024, 4096)

	buf := pool.Get(100000)
	require.NotNil(t, buf)
	assert.Equal(t, 100000, len(*buf))

	// Putting it back is a no-op rather than a poisoned bucket.
	pool.Put(buf)
}

func TestMaxSizeRoundsUpToClassBoundary(t *testing.T) {
	pool := New(1024, 3000)

	buf := pool.Get(3000)
	require.NotNil(t, buf)
	assert.Equal(t, 4096, cap(*buf), "maxSize rounds up to the next power-of-two class")
	pool.Put(buf)
}

func TestConcurrentAccess(t *testing.T) {
	pool := New(1024, 16384)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				size := 1024 + (j%8)*512
				buf := pool.Get(size)
				(*buf)[0] = byte(j)
				pool.Put(buf)
			}
		}()
	}
	wg.Wait()
}
