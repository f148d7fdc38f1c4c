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

package classifier

import (
	"context"

	"go.uber.org/atomic"
	"golang.org/x/sync/semaphore"
)

// Runtime is the process wide compute budget of fits and inferences.
type Runtime struct {
	sem    *semaphore.Weighted
	active *atomic.Int64
}

// NewRuntime returns a runtime allowing concurrency runs at once.
func NewRuntime(concurrency int64) *Runtime {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Runtime{
		sem:    semaphore.NewWeighted(concurrency),
		active: atomic.NewInt64(0),
	}
}

// Acquire blocks until a slot is free or ctx is done. release must be called exactly once.
func (r *Runtime) Acquire(ctx context.Context) (func(), error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	r.active.Inc()

	var released atomic.Bool
	return func() {
		if released.CAS(false, true) {
			r.active.Dec()
			r.sem.Release(1)
		}
	}, nil
}

// Active returns the number of runs holding a slot.
func (r *Runtime) Active() int64 {
	return r.active.Load()
}
