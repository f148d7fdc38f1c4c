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

package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"

	"d7y.io/matcher/matcher/features"
)

// artifactVersion is bumped on incompatible document changes.
const artifactVersion = 1

// PostProcessing configures how raw classifier output is presented.
type PostProcessing struct {
	// Classes is the canonical class order of predictions.
	Classes []string `json:"classes"`
}

// Artifact is a trained classifier with its feature and post processing configuration.
type Artifact struct {
	Classifier     *Classifier
	FeatureConfig  features.Config
	PostProcessing PostProcessing
}

// NewArtifact wraps a fitted classifier.
func NewArtifact(c *Classifier, classes []string) *Artifact {
	return &Artifact{
		Classifier:     c,
		FeatureConfig:  c.Settings().Features,
		PostProcessing: PostProcessing{Classes: classes},
	}
}

// Builder returns the feature builder the classifier was trained with.
func (a *Artifact) Builder() (*features.Builder, error) {
	extractors, err := features.FromConfig(a.FeatureConfig)
	if err != nil {
		return nil, err
	}

	return features.NewBuilder(extractors), nil
}

// Aligner returns the aligner from native labels to canonical classes.
func (a *Artifact) Aligner() *Aligner {
	return NewAligner(a.PostProcessing.Classes, a.Classifier.NativeLabels())
}

type artifactDocument struct {
	Version        int             `json:"version"`
	ModelType      string          `json:"modelType"`
	PostProcessing PostProcessing  `json:"postProcessing"`
	FeatureConfig  features.Config `json:"featureConfig"`
	Settings       Settings        `json:"settings"`
	FeatureNames   []string        `json:"featureNames"`
	NativeLabels   []string        `json:"nativeLabels" validate:"required,dive,required"`
	Rows           [][]float64     `json:"rows" validate:"required,min=1"`
	Targets        []string        `json:"targets" validate:"required,min=1"`
}

// Encode writes the artifact as json. Trees are not written, they are regrown from the rows on decode.
func (a *Artifact) Encode(w io.Writer) error {
	c := a.Classifier
	doc := artifactDocument{
		Version:        artifactVersion,
		ModelType:      ModelTypeRandomForest,
		PostProcessing: a.PostProcessing,
		FeatureConfig:  a.FeatureConfig,
		Settings:       c.settings,
		FeatureNames:   c.featureNames,
		NativeLabels:   c.nativeLabels,
		Rows:           make([][]float64, 0, len(c.rows)),
		Targets:        make([]string, 0, len(c.rows)),
	}

	for _, r := range c.rows {
		doc.Rows = append(doc.Rows, r.vector)
		doc.Targets = append(doc.Targets, r.label)
	}

	return json.NewEncoder(w).Encode(doc)
}

// DecodeArtifact reads an artifact written by Encode and regrows its trees inside runtime.
func DecodeArtifact(ctx context.Context, r io.Reader, runtime *Runtime) (*Artifact, error) {
	var doc artifactDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if doc.Version != artifactVersion {
		return nil, fmt.Errorf("unsupported artifact version %d", doc.Version)
	}

	extractors, err := features.FromConfig(doc.FeatureConfig)
	if err != nil {
		return nil, err
	}

	if !slices.Equal(features.NewBuilder(extractors).FeatureNames(), doc.FeatureNames) {
		return nil, fmt.Errorf("artifact features do not match its feature config")
	}

	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid artifact: %w", err)
	}

	if len(doc.Rows) != len(doc.Targets) {
		return nil, fmt.Errorf("artifact has %d rows and %d targets", len(doc.Rows), len(doc.Targets))
	}

	rows := make([]row, 0, len(doc.Rows))
	for i, vector := range doc.Rows {
		if len(vector) != len(doc.FeatureNames) {
			return nil, fmt.Errorf("artifact row %d has %d features, expected %d", i, len(vector), len(doc.FeatureNames))
		}

		if !slices.Contains(doc.NativeLabels, doc.Targets[i]) {
			return nil, fmt.Errorf("artifact row %d has unknown label %q", i, doc.Targets[i])
		}

		rows = append(rows, row{vector: vector, label: doc.Targets[i]})
	}

	release, err := runtime.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := grow(doc.Settings, doc.FeatureNames, doc.NativeLabels, rows)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Classifier:     c,
		FeatureConfig:  doc.FeatureConfig,
		PostProcessing: doc.PostProcessing,
	}, nil
}
