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

package set

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of distinct values, it is not safe for
// concurrent use.
type Set[T comparable] interface {
	// Add reports whether v was absent.
	Add(v T) bool
	Contains(vals ...T) bool
	Len() uint
	Values() []T
	Range(fn func(T) bool)
}

type set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] {
	return set[T]{}
}

// Of returns a set holding vals.
func Of[T comparable](vals ...T) Set[T] {
	s := make(set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}

	return s
}

func (s set[T]) Add(v T) bool {
	if _, found := s[v]; found {
		return false
	}

	s[v] = struct{}{}
	return true
}

func (s set[T]) Contains(vals ...T) bool {
	for _, v := range vals {
		if _, ok := s[v]; !ok {
			return false
		}
	}

	return true
}

func (s set[T]) Len() uint {
	return uint(len(s))
}

func (s set[T]) Values() []T {
	result := make([]T, 0, len(s))
	for v := range s {
		result = append(result, v)
	}

	return result
}

func (s set[T]) Range(fn func(T) bool) {
	for v := range s {
		if !fn(v) {
			break
		}
	}
}

// Sorted returns the values of s in ascending order, empty sets give an empty slice.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
