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
	"fmt"
	"strconv"
	gosync "sync"
	"time"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/metrics"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/matcher/prediction"
	"d7y.io/matcher/matcher/storage"
	"d7y.io/matcher/matcher/training"
	"d7y.io/matcher/pkg/sync"
)

//go:generate mockgen -destination mocks/lifecycle_mock.go -source lifecycle.go -package mocks

const (
	// MissingArtifactMessage is the train message of a training that returned no artifact.
	MissingArtifactMessage = "failed to identify model paths"

	// InterruptedMessage is the train message of a training lost by a restart.
	InterruptedMessage = "training interrupted"

	coalescedReasonConsistent = "consistent"
	coalescedReasonBusy       = "busy"
)

// Task is a background training of a model.
type Task struct {
	// ID is the unique id of the training.
	ID string

	// ModelID is the id of the trained model.
	ModelID uint

	// StartedAt is the start time of the training.
	StartedAt time.Time

	done chan struct{}
}

// Done is closed once the training result is recorded.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Lifecycle dispatches train and predict requests of models according to their train state.
type Lifecycle interface {
	// Train starts a background training unless the model is consistent or busy,
	// it returns the model state after the request.
	Train(context.Context, uint) (*models.Model, error)

	// Predict predicts the dataset with a consistent model.
	Predict(context.Context, uint, uint) (*prediction.Result, error)

	// Reset drops the training result of the model.
	Reset(context.Context, uint) (*models.Model, error)

	// Update applies update to the stored model and saves it, the model is reset in the
	// same write when update reports a change of its training inputs.
	Update(context.Context, uint, func(*models.Model) (bool, error)) (*models.Model, error)

	// Task returns the running training of the model.
	Task(uint) (*Task, bool)

	// Recover fails the busy models without a running training.
	Recover(context.Context) error

	// Wait blocks until every background training ends.
	Wait()
}

type lifecycle struct {
	checker    Checker
	models     storage.ModelStorage
	training   training.Training
	prediction prediction.Prediction

	// kmu linearizes state transitions per model.
	kmu   *sync.Kmutex
	tasks cmap.ConcurrentMap[string, *Task]
	wg    gosync.WaitGroup
}

// New returns a new Lifecycle.
func New(checker Checker, models storage.ModelStorage, training training.Training, prediction prediction.Prediction) Lifecycle {
	return &lifecycle{
		checker:    checker,
		models:     models,
		training:   training,
		prediction: prediction,
		kmu:        sync.NewKmutex(),
		tasks:      cmap.New[*Task](),
	}
}

func (l *lifecycle) Train(ctx context.Context, modelID uint) (*models.Model, error) {
	l.kmu.Lock(modelID)
	defer l.kmu.Unlock(modelID)

	log := logger.WithModel(modelID)
	model, err := l.models.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}

	if l.checker.IsConsistent(ctx, modelID) {
		log.Info("model is consistent, training skipped")
		metrics.TrainCoalescedCount.WithLabelValues(coalescedReasonConsistent).Inc()
		return model, nil
	}

	if model.State.Status == models.TrainStatusBusy {
		log.Info("model is busy, training coalesced")
		metrics.TrainCoalescedCount.WithLabelValues(coalescedReasonBusy).Inc()
		return model, nil
	}

	model, err = l.transit(ctx, model, EventTrain, "", false)
	if err != nil {
		return nil, err
	}

	task := &Task{
		ID:        uuid.NewString(),
		ModelID:   modelID,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
	l.tasks.Set(taskKey(modelID), task)

	l.wg.Add(1)
	go l.run(task, model.ModelType)

	log.Infof("training task %s started", task.ID)
	return model, nil
}

// run trains the model in background, its result is recorded on the model train state.
func (l *lifecycle) run(task *Task, modelType string) {
	defer l.wg.Done()
	defer close(task.done)
	defer l.tasks.RemoveCb(taskKey(task.ModelID), func(key string, v *Task, exists bool) bool {
		return exists && v == task
	})

	metrics.TrainingTaskGauge.Inc()
	defer metrics.TrainingTaskGauge.Dec()
	metrics.TrainStartedCount.WithLabelValues(modelType).Inc()

	// Training outlives the request which started it.
	ctx := context.Background()
	start := time.Now()
	artifact, err := l.training.Train(ctx, task.ModelID)
	metrics.TrainDuration.WithLabelValues(modelType).Observe(time.Since(start).Seconds())

	if ok := l.complete(ctx, task, artifact, err); !ok {
		metrics.TrainFinishedFailureCount.WithLabelValues(modelType).Inc()
		return
	}

	metrics.TrainFinishedCount.WithLabelValues(modelType).Inc()
}

// complete records the training result and reports whether the model became complete.
func (l *lifecycle) complete(ctx context.Context, task *Task, artifact *classifier.Artifact, trainErr error) bool {
	l.kmu.Lock(task.ModelID)
	defer l.kmu.Unlock(task.ModelID)

	log := logger.WithTrainTask(task.ModelID, task.ID)
	model, err := l.models.Get(ctx, task.ModelID)
	if err != nil {
		log.Warnf("training result dropped: %s", err.Error())
		return false
	}

	// The model was reset while training, its inputs have changed.
	if !canTransit(model.State.Status, EventTrainSucceeded) {
		log.Warnf("training result dropped, model is %s", model.State.Status)
		return false
	}

	if current, ok := l.tasks.Get(taskKey(task.ModelID)); !ok || current != task {
		log.Warn("training result dropped, model is trained by another task")
		return false
	}

	switch {
	case trainErr != nil:
		log.Errorf("training failed: %s", trainErr.Error())
		l.fail(ctx, model, trainErr.Error())
		return false
	case artifact == nil:
		log.Error("training returned no artifact")
		l.fail(ctx, model, MissingArtifactMessage)
		return false
	}

	if _, err := l.models.WriteArtifact(ctx, task.ModelID, artifact); err != nil {
		log.Errorf("persist artifact failed: %s", err.Error())
		l.fail(ctx, model, fmt.Sprintf("persist artifact failed: %s", err.Error()))
		return false
	}

	if _, err := l.transit(ctx, model, EventTrainSucceeded, "", false); err != nil {
		log.Errorf("persist train state failed: %s", err.Error())
		l.fail(ctx, model, fmt.Sprintf("persist train state failed: %s", err.Error()))
		return false
	}

	log.Infof("training finished in %s", time.Since(task.StartedAt))
	return true
}

// fail moves the model to ERROR and drops its artifact.
func (l *lifecycle) fail(ctx context.Context, model *models.Model, message string) {
	if _, err := l.transit(ctx, model, EventTrainFailed, message, true); err != nil {
		logger.WithModel(model.ID).Errorf("persist train failure failed: %s", err.Error())
	}
}

func (l *lifecycle) Predict(ctx context.Context, modelID, dataSetID uint) (*prediction.Result, error) {
	if _, err := l.models.Get(ctx, modelID); err != nil {
		return nil, err
	}

	if !l.checker.IsConsistent(ctx, modelID) {
		return nil, dferrors.Newf(dfcodes.ModelNotTrained, "model %d not trained", modelID)
	}

	return l.prediction.Predict(ctx, modelID, dataSetID)
}

func (l *lifecycle) Reset(ctx context.Context, modelID uint) (*models.Model, error) {
	l.kmu.Lock(modelID)
	defer l.kmu.Unlock(modelID)

	model, err := l.models.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}

	return l.transit(ctx, model, EventReset, "", true)
}

func (l *lifecycle) Update(ctx context.Context, modelID uint, update func(*models.Model) (bool, error)) (*models.Model, error) {
	l.kmu.Lock(modelID)
	defer l.kmu.Unlock(modelID)

	model, err := l.models.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}

	reset, err := update(model)
	if err != nil {
		return nil, err
	}

	if !reset {
		if err := l.models.Update(ctx, model); err != nil {
			return nil, err
		}

		return l.models.Get(ctx, modelID)
	}

	updated := model
	if err := transit(ctx, model.State.Status, EventReset, func(ctx context.Context, dst string) error {
		m, err := l.models.UpdateWithTrainState(ctx, model, dst)
		if err != nil {
			return err
		}

		updated = m
		return nil
	}); err != nil {
		return nil, err
	}

	logger.WithModel(modelID).Info("training inputs changed, model is reset")
	return updated, nil
}

func (l *lifecycle) Task(modelID uint) (*Task, bool) {
	return l.tasks.Get(taskKey(modelID))
}

func (l *lifecycle) Recover(ctx context.Context) error {
	ids, err := l.models.Keys(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := l.recover(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (l *lifecycle) recover(ctx context.Context, modelID uint) error {
	l.kmu.Lock(modelID)
	defer l.kmu.Unlock(modelID)

	model, err := l.models.Get(ctx, modelID)
	if err != nil {
		if dferrors.IsNotFound(err) {
			return nil
		}

		return err
	}

	if model.State.Status != models.TrainStatusBusy {
		return nil
	}

	if _, ok := l.tasks.Get(taskKey(modelID)); ok {
		return nil
	}

	logger.WithModel(modelID).Warn("busy model has no running training")
	_, err = l.transit(ctx, model, EventTrainFailed, InterruptedMessage, true)
	return err
}

func (l *lifecycle) Wait() {
	l.wg.Wait()
}

// transit fires event from the model status and persists the destination status.
func (l *lifecycle) transit(ctx context.Context, model *models.Model, event, message string, deleteArtifact bool) (*models.Model, error) {
	updated := model
	if err := transit(ctx, model.State.Status, event, func(ctx context.Context, dst string) error {
		m, err := l.models.UpdateTrainState(ctx, model.ID, dst, message, deleteArtifact, true)
		if err != nil {
			return err
		}

		updated = m
		return nil
	}); err != nil {
		return nil, err
	}

	logger.WithModel(model.ID).Infof("model state is %s after %s", updated.State.Status, event)
	return updated, nil
}

func taskKey(modelID uint) string {
	return strconv.FormatUint(uint64(modelID), 10)
}
