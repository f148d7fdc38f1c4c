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

package gc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"d7y.io/matcher/pkg/gc/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGC_Add(t *testing.T) {
	tests := []struct {
		name   string
		task   func(runner Runner) Task
		expect func(t *testing.T, g GC, err error)
	}{
		{
			name: "add task",
			task: func(runner Runner) Task {
				return Task{ID: "foo", Interval: 2 * time.Second, Timeout: time.Second, Runner: runner}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name: "task without id",
			task: func(runner Runner) Task {
				return Task{Interval: 2 * time.Second, Timeout: time.Second, Runner: runner}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "empty task id")
			},
		},
		{
			name: "task without interval",
			task: func(runner Runner) Task {
				return Task{ID: "foo", Timeout: time.Second, Runner: runner}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "interval value is greater than 0")
			},
		},
		{
			name: "task without timeout",
			task: func(runner Runner) Task {
				return Task{ID: "foo", Interval: 2 * time.Second, Runner: runner}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "timeout value is greater than 0")
			},
		},
		{
			name: "timeout is greater than interval",
			task: func(runner Runner) Task {
				return Task{ID: "foo", Interval: time.Second, Timeout: 2 * time.Second, Runner: runner}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "timeout value needs to be less than the interval value")
			},
		},
		{
			name: "task without runner",
			task: func(runner Runner) Task {
				return Task{ID: "foo", Interval: 2 * time.Second, Timeout: time.Second}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "empty task runner")
			},
		},
		{
			name: "task already exists",
			task: func(runner Runner) Task {
				return Task{ID: "foo", Interval: 2 * time.Second, Timeout: time.Second, Runner: runner}
			},
			expect: func(t *testing.T, g GC, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.EqualError(g.Add(Task{ID: "foo", Interval: 2 * time.Second, Timeout: time.Second, Runner: mocks.NewMockRunner(gomock.NewController(t))}), "task foo already exists")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			g := New()
			tc.expect(t, g, g.Add(tc.task(mocks.NewMockRunner(ctl))))
		})
	}
}

func TestGC_Run(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		mock   func(mr *mocks.MockRunnerMockRecorder)
		expect func(t *testing.T, err error)
	}{
		{
			name: "run task",
			id:   "foo",
			mock: func(mr *mocks.MockRunnerMockRecorder) {
				mr.RunGC(gomock.Any()).Return(nil).Times(1)
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name: "run task failed",
			id:   "foo",
			mock: func(mr *mocks.MockRunnerMockRecorder) {
				mr.RunGC(gomock.Any()).Return(errors.New("bar")).Times(1)
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "bar")
			},
		},
		{
			name: "run task with timeout",
			id:   "foo",
			mock: func(mr *mocks.MockRunnerMockRecorder) {
				mr.RunGC(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				}).Times(1)
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, context.DeadlineExceeded)
			},
		},
		{
			name: "task not found",
			id:   "bar",
			mock: func(mr *mocks.MockRunnerMockRecorder) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "can not find task bar")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			runner := mocks.NewMockRunner(ctl)
			tc.mock(runner.EXPECT())

			g := New()
			assert.NoError(t, g.Add(Task{ID: "foo", Interval: time.Second, Timeout: 10 * time.Millisecond, Runner: runner}))
			tc.expect(t, g.Run(context.Background(), tc.id))
		})
	}
}

func TestGC_WithLogger(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect func(t *testing.T, logs *observer.ObservedLogs)
	}{
		{
			name: "log task run",
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				assert.Equal(1, logs.FilterMessage("foo GC start").Len())
				assert.Equal(1, logs.FilterMessage("foo GC done").Len())
			},
		},
		{
			name: "log task error",
			err:  errors.New("bar"),
			expect: func(t *testing.T, logs *observer.ObservedLogs) {
				assert := assert.New(t)
				errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
				if assert.Len(errs, 1) {
					assert.Equal("foo GC error: bar", errs[0].Message)
				}
				assert.Equal(0, logs.FilterMessage("foo GC done").Len())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			runner := mocks.NewMockRunner(ctl)
			runner.EXPECT().RunGC(gomock.Any()).Return(tc.err).Times(1)

			core, logs := observer.New(zapcore.DebugLevel)
			g := New(WithLogger(zap.New(core).Sugar()))
			assert.NoError(t, g.Add(Task{ID: "foo", Interval: time.Second, Timeout: time.Second, Runner: runner}))
			_ = g.Run(context.Background(), "foo")
			tc.expect(t, logs)
		})
	}
}

func TestGC_RunAll(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	foo := mocks.NewMockRunner(ctl)
	bar := mocks.NewMockRunner(ctl)
	foo.EXPECT().RunGC(gomock.Any()).Return(nil).Times(1)
	bar.EXPECT().RunGC(gomock.Any()).Return(errors.New("bar")).Times(1)

	g := New()
	assert.NoError(t, g.Add(Task{ID: "foo", Interval: time.Second, Timeout: 10 * time.Millisecond, Runner: foo}))
	assert.NoError(t, g.Add(Task{ID: "bar", Interval: time.Second, Timeout: 10 * time.Millisecond, Runner: bar}))
	g.RunAll(context.Background())
}

func TestGC_Start(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	runner := mocks.NewMockRunner(ctl)
	ran := make(chan struct{})
	runner.EXPECT().RunGC(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	g := New()
	assert.NoError(t, g.Add(Task{ID: "foo", Interval: 20 * time.Millisecond, Timeout: 10 * time.Millisecond, Runner: runner}))
	g.Start(context.Background())

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("task is not run")
	}

	g.Stop()
	g.Stop()
}
