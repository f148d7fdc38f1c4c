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

package lifecycle

import (
	"context"
	"errors"

	"github.com/looplab/fsm"

	"d7y.io/matcher/matcher/models"
)

const (
	// EventTrain starts a training.
	EventTrain = "Train"

	// EventTrainSucceeded finishes a training with a persisted artifact.
	EventTrainSucceeded = "TrainSucceeded"

	// EventTrainFailed finishes a training without artifact.
	EventTrainFailed = "TrainFailed"

	// EventReset drops the training result after a configuration change.
	EventReset = "Reset"
)

func newMachine(status string, callbacks fsm.Callbacks) *fsm.FSM {
	return fsm.NewFSM(
		status,
		fsm.Events{
			{Name: EventTrain, Src: []string{models.TrainStatusUntrained, models.TrainStatusComplete, models.TrainStatusError}, Dst: models.TrainStatusBusy},
			{Name: EventTrainSucceeded, Src: []string{models.TrainStatusBusy}, Dst: models.TrainStatusComplete},
			{Name: EventTrainFailed, Src: []string{models.TrainStatusBusy}, Dst: models.TrainStatusError},
			{Name: EventReset, Src: []string{models.TrainStatusUntrained, models.TrainStatusBusy, models.TrainStatusComplete, models.TrainStatusError}, Dst: models.TrainStatusUntrained},
		},
		callbacks,
	)
}

// canTransit reports whether event is allowed from status.
func canTransit(status, event string) bool {
	return newMachine(status, fsm.Callbacks{}).Can(event)
}

// transit fires event on a machine started at status. persist is called with the
// destination status before the machine moves, an error cancels the transition.
func transit(ctx context.Context, status, event string, persist func(ctx context.Context, dst string) error) error {
	var persistErr error
	machine := newMachine(status, fsm.Callbacks{
		"before_event": func(ctx context.Context, e *fsm.Event) {
			if err := persist(ctx, e.Dst); err != nil {
				persistErr = err
				e.Cancel(err)
			}
		},
	})

	if err := machine.Event(ctx, event); err != nil {
		if persistErr != nil {
			return persistErr
		}

		// Reset of an untrained model is persisted like any other transition.
		var noTransition fsm.NoTransitionError
		if errors.As(err, &noTransition) {
			return nil
		}

		return err
	}

	return nil
}
