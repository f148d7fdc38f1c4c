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
	"fmt"
	"path/filepath"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/metrics"
	"d7y.io/matcher/matcher/storage"
)

//go:generate mockgen -destination mocks/prediction_mock.go -source prediction.go -package mocks

// ColumnPrediction is the prediction of one column.
type ColumnPrediction struct {
	ColumnID   uint               `json:"column_id"`
	ColumnName string             `json:"column_name"`
	Label      string             `json:"label"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	Features   map[string]float64 `json:"features"`
}

// Result is the prediction of a dataset.
type Result struct {
	ModelID     uint               `json:"model_id"`
	DataSetID   uint               `json:"dataset_id"`
	Predictions []ColumnPrediction `json:"predictions"`
	ReportPath  string             `json:"report_path,omitempty"`
}

// Prediction defines the interface to predict the columns of a dataset.
type Prediction interface {
	// Predict predicts every column of the dataset with the model artifact, model state is left untouched.
	Predict(ctx context.Context, modelID, dataSetID uint) (*Result, error)
}

type prediction struct {
	datasets  storage.DatasetStorage
	models    storage.ModelStorage
	runtime   *classifier.Runtime
	reportDir string
}

// New returns a new Prediction, reports are written to reportDir when it is set.
func New(datasets storage.DatasetStorage, models storage.ModelStorage, runtime *classifier.Runtime, reportDir string) Prediction {
	return &prediction{
		datasets:  datasets,
		models:    models,
		runtime:   runtime,
		reportDir: reportDir,
	}
}

func (p *prediction) Predict(ctx context.Context, modelID, dataSetID uint) (*Result, error) {
	metrics.PredictCount.Inc()
	result, err := p.predict(ctx, modelID, dataSetID)
	if err != nil {
		metrics.PredictFailureCount.Inc()
		return nil, err
	}

	metrics.PredictColumnCount.Add(float64(len(result.Predictions)))
	return result, nil
}

func (p *prediction) predict(ctx context.Context, modelID, dataSetID uint) (*Result, error) {
	log := logger.WithModelAndDataSet(modelID, dataSetID)

	model, err := p.models.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}

	dataset, err := p.datasets.Get(ctx, dataSetID)
	if err != nil {
		return nil, err
	}

	if len(dataset.Columns) == 0 {
		return nil, dferrors.Newf(dfcodes.InvalidDataSet, "dataset %d has no columns", dataSetID)
	}

	artifact, err := p.models.ReadArtifact(ctx, model.ModelPath)
	if err != nil {
		return nil, err
	}

	builder, err := artifact.Builder()
	if err != nil {
		return nil, err
	}

	attrs, err := p.datasets.ReadColumns(ctx, dataset)
	if err != nil {
		return nil, err
	}

	vectors, featureNames := builder.Build(attrs)
	probs, err := p.infer(ctx, artifact.Classifier, vectors)
	if err != nil {
		return nil, err
	}

	aligner := artifact.Aligner()
	classes := aligner.Classes()
	result := &Result{
		ModelID:     modelID,
		DataSetID:   dataSetID,
		Predictions: make([]ColumnPrediction, 0, len(attrs)),
	}

	for i, attr := range attrs {
		label, confidence, aligned := aligner.Predict(probs[i])
		cp := ColumnPrediction{
			ColumnID:   attr.ID,
			ColumnName: dataset.Columns[i].Name,
			Label:      label,
			Confidence: confidence,
			Scores:     make(map[string]float64, len(classes)),
			Features:   make(map[string]float64, len(featureNames)),
		}

		for j, class := range classes {
			cp.Scores[class] = aligned[j]
		}

		for j, name := range featureNames {
			cp.Features[name] = vectors[i][j]
		}

		result.Predictions = append(result.Predictions, cp)
	}

	if p.reportDir != "" {
		path := filepath.Join(p.reportDir, fmt.Sprintf("model-%d-dataset-%d.csv", modelID, dataSetID))
		if err := WriteReport(path, classes, featureNames, result.Predictions); err != nil {
			log.Errorf("write report failed: %s", err.Error())
			return nil, err
		}

		result.ReportPath = path
	}

	log.Infof("predicted %d columns", len(result.Predictions))
	return result, nil
}

// infer runs the classifier inside the runtime.
func (p *prediction) infer(ctx context.Context, c *classifier.Classifier, vectors [][]float64) ([][]float64, error) {
	release, err := p.runtime.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return c.Infer(vectors)
}
