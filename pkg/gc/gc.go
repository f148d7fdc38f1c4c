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

//go:generate mockgen -destination mocks/gc_mock.go -package mocks d7y.io/matcher/pkg/gc Runner

package gc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	logger "d7y.io/matcher/internal/dflog"
)

// Logger is the subset of a sugared zap logger used by GC.
type Logger interface {
	Infof(template string, args ...any)
	Errorf(template string, args ...any)
}

// Runner releases a kind of resource.
type Runner interface {
	RunGC(context.Context) error
}

// Task is a resource collection run periodically.
type Task struct {
	// ID is the unique name of the task.
	ID string

	// Interval is the period of collections.
	Interval time.Duration

	// Timeout limits a single collection, it is less than interval.
	Timeout time.Duration

	// Runner collects the resources.
	Runner Runner
}

func (t Task) validate() error {
	if t.ID == "" {
		return errors.New("empty task id")
	}

	if t.Interval <= 0 {
		return errors.New("interval value is greater than 0")
	}

	if t.Timeout <= 0 {
		return errors.New("timeout value is greater than 0")
	}

	if t.Timeout >= t.Interval {
		return errors.New("timeout value needs to be less than the interval value")
	}

	if t.Runner == nil {
		return errors.New("empty task runner")
	}

	return nil
}

// GC is the interface used for release resource.
type GC interface {
	// Add registers a task, tasks are added before Start.
	Add(Task) error

	// Run runs the task once.
	Run(context.Context, string) error

	// RunAll runs all registered tasks once.
	RunAll(context.Context)

	// Start runs every task at its interval.
	Start(context.Context)

	// Stop stops the periodic collections and waits for running ones.
	Stop()
}

type gc struct {
	tasks    *sync.Map
	logger   Logger
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Option is a functional option for configuring the GC.
type Option func(g *gc)

// WithLogger set the logger for GC.
func WithLogger(logger Logger) Option {
	return func(g *gc) {
		g.logger = logger
	}
}

// New returns a new GC instance.
func New(options ...Option) GC {
	g := &gc{
		tasks:  &sync.Map{},
		logger: logger.CoreLogger,
		done:   make(chan struct{}),
	}

	for _, opt := range options {
		opt(g)
	}

	return g
}

func (g *gc) Add(t Task) error {
	if err := t.validate(); err != nil {
		return err
	}

	if _, loaded := g.tasks.LoadOrStore(t.ID, t); loaded {
		return fmt.Errorf("task %s already exists", t.ID)
	}

	return nil
}

func (g *gc) Run(ctx context.Context, id string) error {
	v, ok := g.tasks.Load(id)
	if !ok {
		return fmt.Errorf("can not find task %s", id)
	}

	return g.run(ctx, v.(Task))
}

func (g *gc) RunAll(ctx context.Context) {
	g.tasks.Range(func(_, v any) bool {
		// Failures are logged by run.
		g.run(ctx, v.(Task)) // nolint: errcheck
		return true
	})
}

func (g *gc) Start(ctx context.Context) {
	g.tasks.Range(func(_, v any) bool {
		t := v.(Task)
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()

			tick := time.NewTicker(t.Interval)
			defer tick.Stop()
			for {
				select {
				case <-tick.C:
					g.run(ctx, t) // nolint: errcheck
				case <-ctx.Done():
					return
				case <-g.done:
					return
				}
			}
		}()

		return true
	})
}

func (g *gc) Stop() {
	g.stopOnce.Do(func() {
		close(g.done)
	})

	g.wg.Wait()
	g.logger.Infof("GC stop")
}

func (g *gc) run(ctx context.Context, t Task) error {
	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	g.logger.Infof("%s GC start", t.ID)
	if err := t.Runner.RunGC(ctx); err != nil {
		g.logger.Errorf("%s GC error: %s", t.ID, err.Error())
		return err
	}

	g.logger.Infof("%s GC done", t.ID)
	return nil
}
