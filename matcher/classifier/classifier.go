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

//go:generate mockgen -destination mocks/classifier_mock.go -source classifier.go -package mocks

package classifier

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/trees"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/pkg/container/set"
)

// classAttributeName is the name of the golearn class attribute.
const classAttributeName = "semantic-class"

// Fitter fits classifiers.
type Fitter interface {
	// Fit trains a classifier on the labeled attributes, labels are keyed by attribute id.
	Fit(ctx context.Context, classes []string, data []features.Attribute, labels map[uint]string, settings Settings) (*Classifier, error)
}

type estimator interface {
	Fit(base.FixedDataGrid) error
	Predict(base.FixedDataGrid) (base.FixedDataGrid, error)
}

// Classifier is a bagged ensemble of ID3 trees.
type Classifier struct {
	settings     Settings
	featureNames []string
	nativeLabels []string

	// rows are the training rows after resampling, bags are drawn from them.
	rows  []row
	trees []estimator
}

// NativeLabels returns the sorted labels seen in training, probabilities follow this order.
func (c *Classifier) NativeLabels() []string {
	return c.nativeLabels
}

// FeatureNames returns the names of the input features.
func (c *Classifier) FeatureNames() []string {
	return c.featureNames
}

// Settings returns the settings of the fit.
func (c *Classifier) Settings() Settings {
	return c.settings
}

// NumTrees returns the number of trees of the ensemble.
func (c *Classifier) NumTrees() int {
	return len(c.trees)
}

// Infer returns the vote share of every native label per vector.
func (c *Classifier) Infer(vectors [][]float64) ([][]float64, error) {
	probs := make([][]float64, len(vectors))
	for i := range probs {
		probs[i] = make([]float64, len(c.nativeLabels))
	}

	if len(vectors) == 0 || len(c.trees) == 0 {
		return probs, nil
	}

	for i, v := range vectors {
		if len(v) != len(c.featureNames) {
			return nil, dferrors.Newf(dfcodes.InvalidDataSet, "vector %d has %d features, expected %d", i, len(v), len(c.featureNames))
		}
	}

	index := make(map[string]int, len(c.nativeLabels))
	for j, label := range c.nativeLabels {
		index[label] = j
	}

	targets := make([]string, len(vectors))
	for i := range targets {
		targets[i] = c.nativeLabels[0]
	}

	grid, err := newInstances(c.featureNames, c.nativeLabels, vectors, targets)
	if err != nil {
		return nil, err
	}

	vote := 1 / float64(len(c.trees))
	for _, tree := range c.trees {
		predictions, err := tree.Predict(grid)
		if err != nil {
			return nil, fmt.Errorf("predict: %w", err)
		}

		for i := range vectors {
			if j, ok := index[base.GetClass(predictions, i)]; ok {
				probs[i][j] += vote
			}
		}
	}

	return probs, nil
}

type fitter struct {
	runtime *Runtime
}

// NewFitter returns a fitter running inside runtime.
func NewFitter(runtime *Runtime) Fitter {
	return &fitter{runtime: runtime}
}

func (f *fitter) Fit(ctx context.Context, classes []string, data []features.Attribute, labels map[uint]string, settings Settings) (*Classifier, error) {
	if settings.NumBags == 0 {
		settings.NumBags = DefaultNumBags
	}

	if settings.ResamplingStrategy == "" {
		settings.ResamplingStrategy = NoResampling
	}

	if err := settings.Validate(classes); err != nil {
		return nil, err
	}

	extractors, err := features.FromConfig(settings.Features)
	if err != nil {
		return nil, err
	}

	builder := features.NewBuilder(extractors)
	if len(builder.FeatureNames()) == 0 {
		return nil, dferrors.New(dfcodes.InvalidModelConfig, "no features configured")
	}

	canonical := set.Of(classes...)

	var rows []row
	seen := set.New[string]()
	for _, attr := range data {
		label, ok := labels[attr.ID]
		if !ok {
			continue
		}

		if !canonical.Contains(label) {
			continue
		}

		rows = append(rows, row{vector: builder.BuildOne(attr), label: label})
		seen.Add(label)
	}

	if len(rows) == 0 {
		return nil, dferrors.New(dfcodes.InvalidModelConfig, "no labeled columns to train on")
	}

	nativeLabels := set.Sorted(seen)

	release, err := f.runtime.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	rows = resample(rows, classes, nativeLabels, settings, rand.New(rand.NewSource(settings.Seed)))
	return grow(settings, builder.FeatureNames(), nativeLabels, rows)
}

// grow fits one tree per bag, bag b is drawn with seed Seed+1+b so a classifier
// grown twice from the same rows is identical.
func grow(settings Settings, featureNames, nativeLabels []string, rows []row) (*Classifier, error) {
	c := &Classifier{
		settings:     settings,
		featureNames: featureNames,
		nativeLabels: nativeLabels,
		rows:         rows,
	}

	for b := 0; b < settings.NumBags; b++ {
		r := rand.New(rand.NewSource(settings.Seed + 1 + int64(b)))
		sample := bag(rows, nativeLabels, settings.BagSize, settings.ResamplingStrategy, r)

		vectors := make([][]float64, 0, len(sample))
		targets := make([]string, 0, len(sample))
		for _, s := range sample {
			vectors = append(vectors, s.vector)
			targets = append(targets, s.label)
		}

		grid, err := newInstances(featureNames, nativeLabels, vectors, targets)
		if err != nil {
			return nil, err
		}

		tree := trees.NewID3DecisionTree(0)
		if err := tree.Fit(grid); err != nil {
			return nil, fmt.Errorf("fit tree %d: %w", b, err)
		}

		c.trees = append(c.trees, tree)
	}

	return c, nil
}

func newInstances(featureNames, nativeLabels []string, vectors [][]float64, targets []string) (*base.DenseInstances, error) {
	instances := base.NewDenseInstances()

	specs := make([]base.AttributeSpec, 0, len(featureNames))
	for _, name := range featureNames {
		specs = append(specs, instances.AddAttribute(base.NewFloatAttribute(name)))
	}

	class := base.NewCategoricalAttribute()
	class.SetName(classAttributeName)
	for _, label := range nativeLabels {
		class.GetSysValFromString(label)
	}

	classSpec := instances.AddAttribute(class)
	if err := instances.AddClassAttribute(class); err != nil {
		return nil, err
	}

	if err := instances.Extend(len(vectors)); err != nil {
		return nil, err
	}

	for i, vector := range vectors {
		for j, v := range vector {
			instances.Set(specs[j], i, base.PackFloatToBytes(v))
		}
		instances.Set(classSpec, i, class.GetSysValFromString(targets[i]))
	}

	return instances, nil
}
