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

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/database"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/models"
)

var mockCSV = []byte("name,email,phone\nalice,alice@example.com,555-0100\nbob,bob@example.com,555-0101\n")

func newTestDB(t *testing.T) *gorm.DB {
	dir := t.TempDir()
	db, err := database.New(config.New(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db.DB
}

func newMockDataset() *models.Dataset {
	return &models.Dataset{
		Filename:    "people.csv",
		Description: "people",
		TypeMap:     models.StringMap{"name": "STRING"},
		Columns: []models.Column{
			{Index: 0, Name: "name", Size: 2, LogicalType: "STRING", Sample: []string{"alice"}},
			{Index: 1, Name: "email", Size: 2, LogicalType: "STRING", Sample: []string{"bob@example.com"}},
			{Index: 2, Name: "phone", Size: 2, LogicalType: "STRING", Sample: []string{"555-0100"}},
		},
	}
}

func TestDatasetStorage(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, s DatasetStorage, baseDir string)
	}{
		{
			name: "add and get",
			expect: func(t *testing.T, s DatasetStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				dataset := newMockDataset()
				assert.NoError(s.Add(ctx, dataset, mockCSV))
				assert.Equal(filepath.Join(baseDir, "dataset-1.csv"), dataset.Path)
				assert.FileExists(dataset.Path)

				got, err := s.Get(ctx, dataset.ID)
				assert.NoError(err)
				assert.Equal("people", got.Description)
				assert.Equal(models.StringMap{"name": "STRING"}, got.TypeMap)
				assert.Len(got.Columns, 3)
				assert.Equal("phone", got.Columns[2].Name)

				attrs, err := s.ReadColumns(ctx, got)
				assert.NoError(err)
				assert.Equal(features.Attribute{ID: got.Columns[1].ID, Values: []string{"alice@example.com", "bob@example.com"}}, attrs[1])

				keys, err := s.Keys(ctx)
				assert.NoError(err)
				assert.Equal([]uint{dataset.ID}, keys)

				columns, err := s.ColumnMap(ctx)
				assert.NoError(err)
				assert.Len(columns, 3)
				assert.Equal(dataset.ID, columns[got.Columns[0].ID].DatasetID)
			},
		},
		{
			name: "update bumps modification time",
			expect: func(t *testing.T, s DatasetStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				dataset := newMockDataset()
				assert.NoError(s.Add(ctx, dataset, mockCSV))

				got, err := s.Get(ctx, dataset.ID)
				assert.NoError(err)
				before := got.UpdatedAt

				time.Sleep(10 * time.Millisecond)
				got.Description = "updated"
				got.Columns[0].LogicalType = "INTEGER"
				assert.NoError(s.Update(ctx, got))

				got, err = s.Get(ctx, dataset.ID)
				assert.NoError(err)
				assert.Equal("updated", got.Description)
				assert.Equal("INTEGER", got.Columns[0].LogicalType)
				assert.True(got.UpdatedAt.After(before))
			},
		},
		{
			name: "remove",
			expect: func(t *testing.T, s DatasetStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				dataset := newMockDataset()
				assert.NoError(s.Add(ctx, dataset, mockCSV))
				assert.NoError(s.Remove(ctx, dataset.ID))
				assert.NoFileExists(dataset.Path)

				_, err := s.Get(ctx, dataset.ID)
				assert.True(dferrors.IsNotFound(err))

				columns, err := s.ColumnMap(ctx)
				assert.NoError(err)
				assert.Len(columns, 0)

				datasets, err := s.ListValues(ctx)
				assert.NoError(err)
				assert.Len(datasets, 0)

				assert.True(dferrors.IsNotFound(s.Remove(ctx, dataset.ID)))
			},
		},
		{
			name: "read columns of missing file",
			expect: func(t *testing.T, s DatasetStorage, baseDir string) {
				assert := assert.New(t)
				_, err := s.ReadColumns(context.Background(), &models.Dataset{Path: filepath.Join(baseDir, "foo.csv")})
				assert.True(dferrors.IsNotFound(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			baseDir := t.TempDir()
			tc.expect(t, NewDatasetStorage(newTestDB(t), baseDir), baseDir)
		})
	}
}

func newMockModel() *models.Model {
	return &models.Model{
		Description:        "people",
		ModelType:          classifier.ModelTypeRandomForest,
		Classes:            []string{"email", "phone", "name"},
		Features:           models.FeaturesConfig{ActiveFeatures: []string{features.PropEntriesWithAtSign, features.PropNumericalChars}},
		CostMatrix:         [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
		ResamplingStrategy: string(classifier.NoResampling),
		LabelData:          models.LabelData{2: "email", 3: "phone"},
		RefDataSets:        []uint{1},
		State:              models.TrainState{Status: models.TrainStatusUntrained},
	}
}

func TestModelStorage(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, s ModelStorage, baseDir string)
	}{
		{
			name: "add, update and get",
			expect: func(t *testing.T, s ModelStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				model := newMockModel()
				assert.NoError(s.Add(ctx, model))
				assert.DirExists(filepath.Join(baseDir, "model-1"))

				_, err := s.UpdateTrainState(ctx, model.ID, models.TrainStatusBusy, "", false, true)
				assert.NoError(err)

				model.Description = "updated"
				assert.NoError(s.Update(ctx, model))

				got, err := s.Get(ctx, model.ID)
				assert.NoError(err)
				assert.Equal("updated", got.Description)
				assert.Equal(models.LabelData{2: "email", 3: "phone"}, got.LabelData)
				assert.Equal([]string{"email", "phone", "name"}, []string(got.Classes))
				assert.Equal(models.TrainStatusBusy, got.State.Status)

				keys, err := s.Keys(ctx)
				assert.NoError(err)
				assert.Equal([]uint{model.ID}, keys)

				assert.True(dferrors.IsNotFound(s.Update(ctx, &models.Model{BaseModel: models.BaseModel{ID: 10}})))
			},
		},
		{
			name: "identify paths",
			expect: func(t *testing.T, s ModelStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				model := newMockModel()
				assert.NoError(s.Add(ctx, model))

				paths, err := s.IdentifyPaths(ctx, model.ID)
				assert.NoError(err)
				assert.Equal(filepath.Join(baseDir, "model-1"), paths.Workspace)

				labels, err := ReadLabels(paths.Labels)
				assert.NoError(err)
				assert.Equal(map[uint]string{2: "email", 3: "phone"}, labels)

				matrix, err := ReadCostMatrix(paths.CostMatrix)
				assert.NoError(err)
				assert.Equal([][]float64(model.CostMatrix), matrix)

				cfg, err := ReadFeatureConfig(paths.FeatureConfig)
				assert.NoError(err)
				assert.Equal(model.Features.ActiveFeatures, cfg.ActiveFeatures)

				assert.NoError(os.RemoveAll(paths.Workspace))
				_, err = s.IdentifyPaths(ctx, model.ID)
				assert.True(dferrors.IsNotFound(err))

				_, err = s.IdentifyPaths(ctx, 10)
				assert.True(dferrors.IsNotFound(err))
			},
		},
		{
			name: "write artifact and update train state",
			expect: func(t *testing.T, s ModelStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				model := newMockModel()
				assert.NoError(s.Add(ctx, model))

				c, err := classifier.NewFitter(classifier.NewRuntime(1)).Fit(ctx, model.Classes, []features.Attribute{
					{ID: 2, Values: []string{"alice@example.com"}},
					{ID: 3, Values: []string{"555-0100"}},
				}, model.LabelData, classifier.Settings{Features: features.Config(model.Features), NumBags: 2})
				assert.NoError(err)

				path, err := s.WriteArtifact(ctx, model.ID, classifier.NewArtifact(c, model.Classes))
				assert.NoError(err)
				assert.FileExists(path)

				artifact, err := s.ReadArtifact(ctx, path)
				assert.NoError(err)
				assert.Equal([]string(model.Classes), artifact.PostProcessing.Classes)

				got, err := s.UpdateTrainState(ctx, model.ID, models.TrainStatusComplete, "", false, true)
				assert.NoError(err)
				assert.Equal(path, got.ModelPath)
				assert.Equal(models.TrainStatusComplete, got.State.Status)
				assert.False(got.State.DateChanged.IsZero())
				changed := got.State.DateChanged

				got, err = s.UpdateTrainState(ctx, model.ID, models.TrainStatusError, "foo", true, false)
				assert.NoError(err)
				assert.Equal("", got.ModelPath)
				assert.Equal("foo", got.State.Message)
				assert.True(changed.Equal(got.State.DateChanged))
				assert.NoFileExists(path)

				_, err = s.ReadArtifact(ctx, path)
				assert.True(dferrors.IsNotFound(err))
			},
		},
		{
			name: "update with train state",
			expect: func(t *testing.T, s ModelStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				model := newMockModel()
				assert.NoError(s.Add(ctx, model))

				c, err := classifier.NewFitter(classifier.NewRuntime(1)).Fit(ctx, model.Classes, []features.Attribute{
					{ID: 2, Values: []string{"alice@example.com"}},
					{ID: 3, Values: []string{"555-0100"}},
				}, model.LabelData, classifier.Settings{Features: features.Config(model.Features), NumBags: 2})
				assert.NoError(err)

				path, err := s.WriteArtifact(ctx, model.ID, classifier.NewArtifact(c, model.Classes))
				assert.NoError(err)
				completed, err := s.UpdateTrainState(ctx, model.ID, models.TrainStatusComplete, "", false, true)
				assert.NoError(err)

				changed := completed.State.DateChanged
				time.Sleep(10 * time.Millisecond)
				completed.Classes = []string{"email", "phone"}
				completed.CostMatrix = nil
				completed.LabelData = models.LabelData{2: "email"}
				got, err := s.UpdateWithTrainState(ctx, completed, models.TrainStatusUntrained)
				assert.NoError(err)
				assert.Equal(models.TrainStatusUntrained, got.State.Status)
				assert.Equal("", got.ModelPath)
				assert.NoFileExists(path)

				got, err = s.Get(ctx, model.ID)
				assert.NoError(err)
				assert.Equal([]string{"email", "phone"}, []string(got.Classes))
				assert.Equal(models.LabelData{2: "email"}, got.LabelData)
				assert.Equal(models.TrainStatusUntrained, got.State.Status)
				assert.Equal("", got.ModelPath)
				assert.True(got.State.DateChanged.After(changed))

				_, err = s.UpdateWithTrainState(ctx, &models.Model{BaseModel: models.BaseModel{ID: 10}}, models.TrainStatusUntrained)
				assert.True(dferrors.IsNotFound(err))
			},
		},
		{
			name: "remove",
			expect: func(t *testing.T, s ModelStorage, baseDir string) {
				assert := assert.New(t)
				ctx := context.Background()
				model := newMockModel()
				assert.NoError(s.Add(ctx, model))
				assert.NoError(s.Remove(ctx, model.ID))
				assert.NoDirExists(filepath.Join(baseDir, "model-1"))

				_, err := s.Get(ctx, model.ID)
				assert.True(dferrors.IsNotFound(err))

				values, err := s.ListValues(ctx)
				assert.NoError(err)
				assert.Len(values, 0)

				_, err = s.UpdateTrainState(ctx, model.ID, models.TrainStatusBusy, "", false, true)
				assert.True(dferrors.IsNotFound(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			baseDir := t.TempDir()
			tc.expect(t, NewModelStorage(newTestDB(t), baseDir, classifier.NewLoader(classifier.NewRuntime(1), time.Minute)), baseDir)
		})
	}
}
