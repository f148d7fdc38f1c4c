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

package service

import (
	"context"
	"sync"

	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/lifecycle"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/matcher/prediction"
	"d7y.io/matcher/matcher/storage"
	"d7y.io/matcher/matcher/types"
)

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

type Service interface {
	CreateDataSet(context.Context, string, []byte, string, map[string]string) (*models.Dataset, error)
	DestroyDataSet(context.Context, uint) error
	UpdateDataSet(context.Context, uint, types.UpdateDataSetRequest) (*models.Dataset, error)
	GetDataSet(context.Context, uint) (*models.Dataset, error)
	GetDataSets(context.Context, types.GetDataSetsQuery) ([]models.Dataset, int64, error)

	CreateModel(context.Context, types.CreateModelRequest) (*models.Model, error)
	DestroyModel(context.Context, uint) error
	UpdateModel(context.Context, uint, types.UpdateModelRequest) (*models.Model, error)
	GetModel(context.Context, uint) (*models.Model, error)
	GetModels(context.Context, types.GetModelsQuery) ([]models.Model, int64, error)
	TrainModel(context.Context, uint) (*models.Model, error)
	PredictModel(context.Context, uint, uint) (*prediction.Result, error)
}

type service struct {
	config    *config.Config
	datasets  storage.DatasetStorage
	models    storage.ModelStorage
	lifecycle lifecycle.Lifecycle

	// labelMu keeps label writes out of dataset removals.
	labelMu sync.RWMutex
}

// New returns a new Service instance.
func New(cfg *config.Config, datasets storage.DatasetStorage, models storage.ModelStorage, lifecycle lifecycle.Lifecycle) Service {
	return &service{
		config:    cfg,
		datasets:  datasets,
		models:    models,
		lifecycle: lifecycle,
	}
}

// paginate returns the page of values, page starts from 1.
func paginate[T any](values []T, page, perPage int) []T {
	if page <= 0 || perPage <= 0 {
		return values
	}

	start := (page - 1) * perPage
	if start >= len(values) {
		return []T{}
	}

	return values[start:min(start+perPage, len(values))]
}
