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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/models"
)

const (
	// DataSetFilePrefix is prefix of dataset file name.
	DataSetFilePrefix = "dataset"

	// ModelWorkspacePrefix is prefix of model workspace directory name.
	ModelWorkspacePrefix = "model"

	// CSVFileExt is extension of csv file name.
	CSVFileExt = "csv"

	// FeatureConfigFileName is file name of the feature config in a model workspace.
	FeatureConfigFileName = "features.json"

	// CostMatrixFileName is file name of the cost matrix in a model workspace.
	CostMatrixFileName = "cost_matrix.csv"

	// LabelsFileName is file name of the labeled columns in a model workspace.
	LabelsFileName = "labels.csv"

	// ArtifactFileName is file name of the trained classifier in a model workspace.
	ArtifactFileName = "model.json"
)

// DatasetStorage is the interface used for dataset storage.
type DatasetStorage interface {
	// Get returns the dataset with its columns ordered by position.
	Get(context.Context, uint) (*models.Dataset, error)

	// Add writes the csv content and inserts the dataset with its columns.
	Add(context.Context, *models.Dataset, []byte) error

	// Update saves the dataset description, type map and columns.
	Update(context.Context, *models.Dataset) error

	// Remove removes the dataset, its columns and its csv file.
	Remove(context.Context, uint) error

	// Keys returns ids of all datasets.
	Keys(context.Context) ([]uint, error)

	// ListValues returns all datasets with their columns.
	ListValues(context.Context) ([]models.Dataset, error)

	// ColumnMap returns every stored column keyed by column id.
	ColumnMap(context.Context) (map[uint]models.Column, error)

	// ReadColumns reads the csv of the dataset as attributes, one per column.
	ReadColumns(context.Context, *models.Dataset) ([]features.Attribute, error)
}

// ModelPaths are the files of a model workspace.
type ModelPaths struct {
	Workspace     string
	FeatureConfig string
	CostMatrix    string
	Labels        string
	Artifact      string
}

// ModelStorage is the interface used for model storage.
type ModelStorage interface {
	// Get returns the model.
	Get(context.Context, uint) (*models.Model, error)

	// Add inserts the model and creates its workspace.
	Add(context.Context, *models.Model) error

	// Update saves the model configuration, train state and artifact path are left untouched.
	Update(context.Context, *models.Model) error

	// Remove removes the model, its workspace and its artifact.
	Remove(context.Context, uint) error

	// Keys returns ids of all models.
	Keys(context.Context) ([]uint, error)

	// ListValues returns all models.
	ListValues(context.Context) ([]models.Model, error)

	// UpdateTrainState sets the train status and message, the artifact is dropped when deleteArtifact is set
	// and dateChanged is refreshed when changeDate is set.
	UpdateTrainState(ctx context.Context, id uint, status, message string, deleteArtifact, changeDate bool) (*models.Model, error)

	// UpdateWithTrainState saves the model configuration and moves the train state to status
	// in one transaction, the artifact is dropped and dateChanged is refreshed.
	UpdateWithTrainState(ctx context.Context, model *models.Model, status string) (*models.Model, error)

	// IdentifyPaths writes the model training inputs into its workspace and returns their paths.
	IdentifyPaths(context.Context, uint) (*ModelPaths, error)

	// WriteArtifact persists the artifact in the model workspace and records its path.
	WriteArtifact(context.Context, uint, *classifier.Artifact) (string, error)

	// ReadArtifact loads the artifact at path.
	ReadArtifact(context.Context, string) (*classifier.Artifact, error)
}

// convertError maps gorm lookup failures to NotFound.
func convertError(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dferrors.NotFoundf(format, a...)
	}

	return err
}
