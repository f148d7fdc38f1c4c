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
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Kmutex is a mutex keyed by an arbitrary comparable value.
// Entries are reference counted and dropped when the last holder or waiter leaves.
type Kmutex struct {
	mu      sync.Mutex
	entries map[any]*entry
}

func NewKmutex() *Kmutex {
	return &Kmutex{
		entries: make(map[any]*entry),
	}
}

func (k *Kmutex) Lock(key any) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// TryLock locks key only if it is free.
func (k *Kmutex) TryLock(key any) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}

	if !e.mu.TryLock() {
		if e.refs == 0 {
			delete(k.entries, key)
		}
		return false
	}

	e.refs++
	return true
}

func (k *Kmutex) Unlock(key any) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		return
	}

	e.refs--
	if e.refs <= 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// Len returns the number of keys currently held or waited on.
func (k *Kmutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.entries)
}
