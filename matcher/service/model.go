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
	"slices"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/matcher/prediction"
	"d7y.io/matcher/matcher/types"
	"d7y.io/matcher/pkg/container/set"
)

func (s *service) CreateModel(ctx context.Context, json types.CreateModelRequest) (*models.Model, error) {
	featureConfig := features.DefaultConfig()
	if json.Features != nil {
		featureConfig = *json.Features
	}

	model := models.Model{
		Description:        json.Description,
		ModelType:          classifier.ModelTypeRandomForest,
		Classes:            json.Classes,
		Features:           models.FeaturesConfig(featureConfig),
		CostMatrix:         json.CostMatrix,
		ResamplingStrategy: json.ResamplingStrategy,
		NumBags:            json.NumBags,
		BagSize:            json.BagSize,
		State:              models.TrainState{Status: models.TrainStatusUntrained},
	}

	if err := s.validateModel(&model); err != nil {
		return nil, err
	}

	s.labelMu.RLock()
	defer s.labelMu.RUnlock()

	if err := s.setLabelData(ctx, &model, json.LabelData); err != nil {
		return nil, err
	}

	if err := s.models.Add(ctx, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

func (s *service) DestroyModel(ctx context.Context, id uint) error {
	return s.models.Remove(ctx, id)
}

func (s *service) UpdateModel(ctx context.Context, id uint, json types.UpdateModelRequest) (*models.Model, error) {
	s.labelMu.RLock()
	defer s.labelMu.RUnlock()

	return s.updateModel(ctx, id, json)
}

// updateModel merges json into the model, any change of the training inputs resets it.
func (s *service) updateModel(ctx context.Context, id uint, json types.UpdateModelRequest) (*models.Model, error) {
	return s.lifecycle.Update(ctx, id, func(model *models.Model) (bool, error) {
		var reset bool
		if json.Description != nil {
			model.Description = *json.Description
		}

		if json.Classes != nil {
			model.Classes = json.Classes
			reset = true
		}

		if json.Features != nil {
			model.Features = models.FeaturesConfig(*json.Features)
			reset = true
		}

		if json.CostMatrix != nil {
			model.CostMatrix = json.CostMatrix
			reset = true
		}

		if json.ResamplingStrategy != nil {
			model.ResamplingStrategy = *json.ResamplingStrategy
			reset = true
		}

		if json.NumBags != nil {
			model.NumBags = json.NumBags
			reset = true
		}

		if json.BagSize != nil {
			model.BagSize = json.BagSize
			reset = true
		}

		if err := s.validateModel(model); err != nil {
			return false, err
		}

		// Labels are filtered again when classes change.
		labelData := json.LabelData
		if labelData != nil || json.Classes != nil {
			if labelData == nil {
				labelData = model.LabelData
			}

			if err := s.setLabelData(ctx, model, labelData); err != nil {
				return false, err
			}
			reset = true
		}

		return reset, nil
	})
}

func (s *service) GetModel(ctx context.Context, id uint) (*models.Model, error) {
	return s.models.Get(ctx, id)
}

func (s *service) GetModels(ctx context.Context, q types.GetModelsQuery) ([]models.Model, int64, error) {
	values, err := s.models.ListValues(ctx)
	if err != nil {
		return nil, 0, err
	}

	return paginate(values, q.Page, q.PerPage), int64(len(values)), nil
}

func (s *service) TrainModel(ctx context.Context, id uint) (*models.Model, error) {
	return s.lifecycle.Train(ctx, id)
}

func (s *service) PredictModel(ctx context.Context, id, dataSetID uint) (*prediction.Result, error) {
	return s.lifecycle.Predict(ctx, id, dataSetID)
}

// validateModel checks the training configuration of the model.
func (s *service) validateModel(model *models.Model) error {
	strategy, err := classifier.ParseResamplingStrategy(model.ResamplingStrategy)
	if err != nil {
		return err
	}
	model.ResamplingStrategy = string(strategy)

	if _, err := features.FromConfig(features.Config(model.Features)); err != nil {
		return err
	}

	if err := classifier.ValidateCostMatrix(model.CostMatrix, len(model.Classes)); err != nil {
		return err
	}

	return classifier.ValidateBagging(model.NumBags, model.BagSize)
}

// setLabelData keeps the labels of stored columns with a class of the model
// and derives the referenced datasets.
func (s *service) setLabelData(ctx context.Context, model *models.Model, labelData map[uint]string) error {
	columns, err := s.datasets.ColumnMap(ctx)
	if err != nil {
		return err
	}

	log := logger.WithModel(model.ID)
	labels := models.LabelData{}
	refs := set.New[uint]()
	for columnID, label := range labelData {
		column, ok := columns[columnID]
		if !ok {
			log.Warnf("label of unknown column %d is dropped", columnID)
			continue
		}

		if !slices.Contains(model.Classes, label) {
			log.Warnf("label %q of column %d is not a class, dropped", label, columnID)
			continue
		}

		labels[columnID] = label
		refs.Add(column.DatasetID)
	}

	model.LabelData = labels
	model.RefDataSets = set.Sorted(refs)
	return nil
}
