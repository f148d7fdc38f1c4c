/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sync

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKmutex_Lock(t *testing.T) {
	k := NewKmutex()
	done := time.After(time.Second)

	k.Lock("foo")
	foo := make(chan struct{})
	go func() {
		k.Lock("foo")
		close(foo)
	}()

	k.Lock("bar")

	select {
	case <-foo:
		t.Fatal("foo is locked twice")
	case <-time.After(50 * time.Millisecond):
	}

	k.Unlock("foo")
	select {
	case <-foo:
		k.Unlock("foo")
	case <-done:
		t.Fatal("foo is not unlocked")
	}

	k.Unlock("bar")
	assert.Equal(t, 0, k.Len())
}

func TestKmutex_TryLock(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, k *Kmutex)
	}{
		{
			name: "try lock free key",
			expect: func(t *testing.T, k *Kmutex) {
				assert := assert.New(t)
				assert.True(k.TryLock("foo"))
				assert.Equal(1, k.Len())
				k.Unlock("foo")
				assert.Equal(0, k.Len())
			},
		},
		{
			name: "try lock held key",
			expect: func(t *testing.T, k *Kmutex) {
				assert := assert.New(t)
				k.Lock("foo")
				assert.False(k.TryLock("foo"))
				assert.True(k.TryLock("bar"))
				k.Unlock("foo")
				k.Unlock("bar")
				assert.Equal(0, k.Len())
			},
		},
		{
			name: "unlock unknown key",
			expect: func(t *testing.T, k *Kmutex) {
				assert := assert.New(t)
				k.Unlock("foo")
				assert.Equal(0, k.Len())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, NewKmutex())
		})
	}
}

func TestKmutex_Concurrent(t *testing.T) {
	k := NewKmutex()
	counter := make([]int, 4)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := i % 4
			k.Lock(key)
			counter[key]++
			k.Unlock(key)
		}(i)
	}
	wg.Wait()

	assert := assert.New(t)
	assert.Equal(0, k.Len())
	for key := 0; key < 4; key++ {
		assert.Equal(25, counter[key])
	}
}
