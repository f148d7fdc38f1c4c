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

package training

import (
	"context"

	"golang.org/x/sync/errgroup"

	"d7y.io/matcher/internal/dferrors"
	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/storage"
)

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

// Training defines the interface to train a model.
type Training interface {
	// Train fits the classifier of the model and returns its artifact, model state is left untouched.
	Train(context.Context, uint) (*classifier.Artifact, error)
}

// training implements Training interface.
type training struct {
	// Matcher service config.
	config *config.Config

	// Dataset storage interface.
	datasets storage.DatasetStorage

	// Model storage interface.
	models storage.ModelStorage

	// Classifier fitter.
	fitter classifier.Fitter
}

// New returns a new Training.
func New(cfg *config.Config, datasets storage.DatasetStorage, models storage.ModelStorage, fitter classifier.Fitter) Training {
	return &training{
		config:   cfg,
		datasets: datasets,
		models:   models,
		fitter:   fitter,
	}
}

// Train fits the classifier of the model.
func (t *training) Train(ctx context.Context, modelID uint) (*classifier.Artifact, error) {
	log := logger.WithModel(modelID)

	model, err := t.models.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}

	// 1. Resolve the workspace, it holds the training inputs of the model.
	paths, err := t.models.IdentifyPaths(ctx, modelID)
	if err != nil {
		return nil, err
	}

	// 2. Load the referenced datasets.
	data, err := t.loadData(ctx, model.RefDataSets)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, dferrors.NotFoundf("model %d has no training data", modelID)
	}

	// 3. Load the labeled columns.
	labels, err := storage.ReadLabels(paths.Labels)
	if err != nil {
		return nil, err
	}

	if len(labels) == 0 {
		return nil, dferrors.NotFoundf("model %d has no labeled data", modelID)
	}

	// 4. Assemble settings.
	settings, err := t.settings(paths, model.Classes, model.ResamplingStrategy, model.NumBags, model.BagSize)
	if err != nil {
		return nil, err
	}

	// 5. Fit.
	log.Infof("fit %d columns with %d labels, strategy %s", len(data), len(labels), settings.ResamplingStrategy)
	c, err := t.fitter.Fit(ctx, model.Classes, data, labels, settings)
	if err != nil {
		return nil, err
	}

	log.Infof("fit %d trees over native labels %v", c.NumTrees(), c.NativeLabels())
	return classifier.NewArtifact(c, model.Classes), nil
}

// loadData reads the columns of every referenced dataset, datasets removed meanwhile are skipped.
func (t *training) loadData(ctx context.Context, ids []uint) ([]features.Attribute, error) {
	results := make([][]features.Attribute, len(ids))
	eg, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		eg.Go(func() error {
			dataset, err := t.datasets.Get(ctx, id)
			if err != nil {
				if dferrors.IsNotFound(err) {
					logger.WithDataSet(id).Warnf("referenced dataset is gone: %s", err.Error())
					return nil
				}

				return err
			}

			attrs, err := t.datasets.ReadColumns(ctx, dataset)
			if err != nil {
				return err
			}

			results[i] = attrs
			return nil
		})
	}

	// Wait for all datasets to load.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var data []features.Attribute
	for _, attrs := range results {
		data = append(data, attrs...)
	}

	return data, nil
}

func (t *training) settings(paths *storage.ModelPaths, classes []string, strategy string, numBags, bagSize *int) (classifier.Settings, error) {
	resampling, err := classifier.ParseResamplingStrategy(strategy)
	if err != nil {
		return classifier.Settings{}, err
	}

	featureConfig, err := storage.ReadFeatureConfig(paths.FeatureConfig)
	if err != nil {
		return classifier.Settings{}, err
	}

	costMatrix, err := storage.ReadCostMatrix(paths.CostMatrix)
	if err != nil {
		return classifier.Settings{}, err
	}

	if err := classifier.ValidateCostMatrix(costMatrix, len(classes)); err != nil {
		return classifier.Settings{}, err
	}

	if err := classifier.ValidateBagging(numBags, bagSize); err != nil {
		return classifier.Settings{}, err
	}

	settings := classifier.Settings{
		ResamplingStrategy: resampling,
		Features:           featureConfig,
		CostMatrix:         costMatrix,
		NumBags:            t.config.Training.NumBags,
		Seed:               t.config.Training.Seed,
	}

	if numBags != nil {
		settings.NumBags = *numBags
	}

	if bagSize != nil {
		settings.BagSize = *bagSize
	}

	return settings, nil
}
