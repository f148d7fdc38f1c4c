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
	"os"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/matcher/storage"
)

//go:generate mockgen -destination mocks/checker_mock.go -source checker.go -package mocks

// Checker decides whether a trained model can still be served.
type Checker interface {
	// IsConsistent reports whether the model is complete, its artifact exists and
	// it was trained after the last modification of every referenced dataset.
	IsConsistent(context.Context, uint) bool
}

type checker struct {
	datasets storage.DatasetStorage
	models   storage.ModelStorage
}

// NewChecker returns a new Checker.
func NewChecker(datasets storage.DatasetStorage, models storage.ModelStorage) Checker {
	return &checker{
		datasets: datasets,
		models:   models,
	}
}

func (c *checker) IsConsistent(ctx context.Context, modelID uint) bool {
	log := logger.WithModel(modelID)

	model, err := c.models.Get(ctx, modelID)
	if err != nil {
		log.Debugf("model lookup failed: %s", err.Error())
		return false
	}

	if model.State.Status != models.TrainStatusComplete {
		return false
	}

	if model.ModelPath == "" {
		return false
	}

	if _, err := os.Stat(model.ModelPath); err != nil {
		log.Warnf("artifact %s is unavailable: %s", model.ModelPath, err.Error())
		return false
	}

	for _, id := range model.RefDataSets {
		dataset, err := c.datasets.Get(ctx, id)
		if err != nil {
			log.Debugf("dataset %d lookup failed: %s", id, err.Error())
			return false
		}

		// A modification within the same stored tick as the training is stale.
		if !dataset.UpdatedAt.Truncate(models.TimePrecision).Before(model.State.DateChanged.Truncate(models.TimePrecision)) {
			log.Infof("dataset %d was modified after training", id)
			return false
		}
	}

	return true
}
