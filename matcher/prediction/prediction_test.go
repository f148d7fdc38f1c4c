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

package prediction

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/models"
	storagemocks "d7y.io/matcher/matcher/storage/mocks"
)

var (
	mockClasses = []string{"email", "phone", "name"}

	mockFeatureConfig = features.Config{
		ActiveFeatures: []string{features.PropEntriesWithAtSign, features.PropNumericalChars},
	}

	mockModel = &models.Model{
		BaseModel: models.BaseModel{ID: 1},
		Classes:   mockClasses,
		ModelPath: "/foo/model.json",
	}

	mockDataset = &models.Dataset{
		BaseModel: models.BaseModel{ID: 2},
		Columns: []models.Column{
			{ID: 10, Index: 0, Name: "contact"},
			{ID: 11, Index: 1, Name: "mobile"},
		},
	}

	mockAttributes = []features.Attribute{
		{ID: 10, Values: []string{"alice@example.com", "bob@example.com"}},
		{ID: 11, Values: []string{"555-0100", "555-0101"}},
	}
)

func newMockArtifact(t *testing.T) *classifier.Artifact {
	c, err := classifier.NewFitter(classifier.NewRuntime(1)).Fit(context.Background(), mockClasses, []features.Attribute{
		{ID: 1, Values: []string{"carol@example.org", "dave@example.com"}},
		{ID: 2, Values: []string{"erin@example.net", "frank@example.com"}},
		{ID: 3, Values: []string{"555-0110", "555-0111"}},
		{ID: 4, Values: []string{"555-0120", "555-0121"}},
	}, map[uint]string{1: "email", 2: "email", 3: "phone", 4: "phone"}, classifier.Settings{Features: mockFeatureConfig, NumBags: 3, Seed: 1})
	require.NoError(t, err)

	return classifier.NewArtifact(c, mockClasses)
}

func TestPrediction_New(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assert := assert.New(t)
	p := New(storagemocks.NewMockDatasetStorage(ctl), storagemocks.NewMockModelStorage(ctl), classifier.NewRuntime(1), "")
	assert.Equal(reflect.TypeOf(p).Elem().Name(), "prediction")
}

func TestPrediction_Predict(t *testing.T) {
	tests := []struct {
		name      string
		reportDir bool
		mock      func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder)
		expect    func(t *testing.T, result *Result, reportDir string, err error)
	}{
		{
			name: "predict columns",
			mock: func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder) {
				ms.Get(gomock.Any(), uint(1)).Return(mockModel, nil).Times(1)
				ds.Get(gomock.Any(), uint(2)).Return(mockDataset, nil).Times(1)
				ms.ReadArtifact(gomock.Any(), "/foo/model.json").Return(newMockArtifact(t), nil).Times(1)
				ds.ReadColumns(gomock.Any(), mockDataset).Return(mockAttributes, nil).Times(1)
			},
			expect: func(t *testing.T, result *Result, reportDir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(uint(1), result.ModelID)
				assert.Equal(uint(2), result.DataSetID)
				assert.Empty(result.ReportPath)
				assert.Len(result.Predictions, 2)

				for i, p := range result.Predictions {
					assert.Equal(mockDataset.Columns[i].ID, p.ColumnID)
					assert.Equal(mockDataset.Columns[i].Name, p.ColumnName)
					assert.Len(p.Scores, 3)
					assert.Equal(float64(0), p.Scores["name"])
					assert.Contains([]string{"email", "phone"}, p.Label)
					assert.Equal(p.Scores[p.Label], p.Confidence)
					assert.InDelta(1, p.Scores["email"]+p.Scores["phone"], 1e-9)
					assert.Len(p.Features, 2)
				}

				assert.Equal(float64(1), result.Predictions[0].Features[features.PropEntriesWithAtSign])
				assert.Equal(float64(0), result.Predictions[1].Features[features.PropEntriesWithAtSign])
			},
		},
		{
			name:      "predict columns with report",
			reportDir: true,
			mock: func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder) {
				ms.Get(gomock.Any(), uint(1)).Return(mockModel, nil).Times(1)
				ds.Get(gomock.Any(), uint(2)).Return(mockDataset, nil).Times(1)
				ms.ReadArtifact(gomock.Any(), "/foo/model.json").Return(newMockArtifact(t), nil).Times(1)
				ds.ReadColumns(gomock.Any(), mockDataset).Return(mockAttributes, nil).Times(1)
			},
			expect: func(t *testing.T, result *Result, reportDir string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(filepath.Join(reportDir, "model-1-dataset-2.csv"), result.ReportPath)

				f, err := os.Open(result.ReportPath)
				assert.NoError(err)
				defer f.Close()

				records, err := csv.NewReader(f).ReadAll()
				assert.NoError(err)
				assert.Len(records, 3)
				assert.Equal([]string{"id", "label", "confidence", "email", "phone", "name", features.PropEntriesWithAtSign, features.PropNumericalChars}, records[0])
				assert.Equal("10", records[1][0])
				assert.Equal(result.Predictions[0].Label, records[1][1])
				assert.Equal("11", records[2][0])
			},
		},
		{
			name: "model not found",
			mock: func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder) {
				ms.Get(gomock.Any(), uint(1)).Return(nil, dferrors.NotFoundf("model 1 not found")).Times(1)
			},
			expect: func(t *testing.T, result *Result, reportDir string, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsNotFound(err))
				assert.Nil(result)
			},
		},
		{
			name: "dataset not found",
			mock: func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder) {
				ms.Get(gomock.Any(), uint(1)).Return(mockModel, nil).Times(1)
				ds.Get(gomock.Any(), uint(2)).Return(nil, dferrors.NotFoundf("dataset 2 not found")).Times(1)
			},
			expect: func(t *testing.T, result *Result, reportDir string, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "[1404]dataset 2 not found")
			},
		},
		{
			name: "dataset has no columns",
			mock: func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder) {
				ms.Get(gomock.Any(), uint(1)).Return(mockModel, nil).Times(1)
				ds.Get(gomock.Any(), uint(2)).Return(&models.Dataset{BaseModel: models.BaseModel{ID: 2}}, nil).Times(1)
			},
			expect: func(t *testing.T, result *Result, reportDir string, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dfcodes.InvalidDataSet))
			},
		},
		{
			name: "artifact not found",
			mock: func(t *testing.T, ds *storagemocks.MockDatasetStorageMockRecorder, ms *storagemocks.MockModelStorageMockRecorder) {
				ms.Get(gomock.Any(), uint(1)).Return(mockModel, nil).Times(1)
				ds.Get(gomock.Any(), uint(2)).Return(mockDataset, nil).Times(1)
				ms.ReadArtifact(gomock.Any(), "/foo/model.json").Return(nil, dferrors.NotFoundf("artifact not found")).Times(1)
			},
			expect: func(t *testing.T, result *Result, reportDir string, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsNotFound(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			datasets := storagemocks.NewMockDatasetStorage(ctl)
			modelStorage := storagemocks.NewMockModelStorage(ctl)
			tc.mock(t, datasets.EXPECT(), modelStorage.EXPECT())

			var reportDir string
			if tc.reportDir {
				reportDir = t.TempDir()
			}

			result, err := New(datasets, modelStorage, classifier.NewRuntime(1), reportDir).Predict(context.Background(), 1, 2)
			tc.expect(t, result, reportDir, err)
		})
	}
}
