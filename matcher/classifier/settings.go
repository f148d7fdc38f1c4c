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
	"math"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/features"
)

// ResamplingStrategy rebalances training rows per class.
type ResamplingStrategy string

const (
	NoResampling   ResamplingStrategy = "NoResampling"
	ResampleToMean ResamplingStrategy = "ResampleToMean"
	ResampleToMax  ResamplingStrategy = "ResampleToMax"
	UpsampleToMax  ResamplingStrategy = "UpsampleToMax"
	UpsampleToMean ResamplingStrategy = "UpsampleToMean"
	CostMatrix     ResamplingStrategy = "CostMatrix"
	Bagging        ResamplingStrategy = "Bagging"
	BaggingToMax   ResamplingStrategy = "BaggingToMax"
	BaggingToMean  ResamplingStrategy = "BaggingToMean"
)

// ResamplingStrategies lists all strategies.
var ResamplingStrategies = []ResamplingStrategy{
	NoResampling, ResampleToMean, ResampleToMax, UpsampleToMax, UpsampleToMean,
	CostMatrix, Bagging, BaggingToMax, BaggingToMean,
}

// ParseResamplingStrategy parses s, empty is NoResampling.
func ParseResamplingStrategy(s string) (ResamplingStrategy, error) {
	if s == "" {
		return NoResampling, nil
	}

	for _, strategy := range ResamplingStrategies {
		if string(strategy) == s {
			return strategy, nil
		}
	}

	return "", dferrors.Newf(dfcodes.InvalidModelConfig, "invalid resampling strategy %q", s)
}

const (
	// DefaultNumBags is the number of trees when unset.
	DefaultNumBags = 10

	// ModelTypeRandomForest is the only model type.
	ModelTypeRandomForest = "randomForest"
)

// Settings configure one fit.
type Settings struct {
	ResamplingStrategy ResamplingStrategy `json:"resamplingStrategy"`
	Features           features.Config    `json:"features"`
	CostMatrix         [][]float64        `json:"costMatrix,omitempty"`

	// NumBags is the number of trees.
	NumBags int `json:"numBags" validate:"gt=0"`

	// BagSize is the number of rows of each bootstrap sample, 0 uses every row.
	BagSize int `json:"bagSize" validate:"gte=0"`

	Seed int64 `json:"seed"`
}

// Validate checks settings against the canonical classes.
func (s Settings) Validate(classes []string) error {
	if _, err := ParseResamplingStrategy(string(s.ResamplingStrategy)); err != nil {
		return err
	}

	if err := ValidateCostMatrix(s.CostMatrix, len(classes)); err != nil {
		return err
	}

	if s.ResamplingStrategy == CostMatrix && len(s.CostMatrix) == 0 {
		return dferrors.New(dfcodes.InvalidModelConfig, "resampling strategy CostMatrix requires a cost matrix")
	}

	if s.NumBags <= 0 {
		return dferrors.Newf(dfcodes.InvalidModelConfig, "numBags must be positive, got %d", s.NumBags)
	}

	if s.BagSize < 0 {
		return dferrors.Newf(dfcodes.InvalidModelConfig, "bagSize must not be negative, got %d", s.BagSize)
	}

	return nil
}

// ValidateCostMatrix checks an optional cost matrix is square over n classes with finite,
// non negative costs.
func ValidateCostMatrix(matrix [][]float64, n int) error {
	if len(matrix) == 0 {
		return nil
	}

	if len(matrix) != n {
		return dferrors.Newf(dfcodes.InvalidModelConfig, "cost matrix has %d rows, expected %d", len(matrix), n)
	}

	for i, row := range matrix {
		if len(row) != n {
			return dferrors.Newf(dfcodes.InvalidModelConfig, "cost matrix row %d has %d columns, expected %d", i, len(row), n)
		}

		for _, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return dferrors.Newf(dfcodes.InvalidModelConfig, "cost matrix row %d has invalid cost %v", i, v)
			}
		}
	}

	return nil
}

// ValidateBagging checks optional bagging parameters.
func ValidateBagging(numBags, bagSize *int) error {
	if numBags != nil && *numBags <= 0 {
		return dferrors.Newf(dfcodes.InvalidModelConfig, "numBags must be positive, got %d", *numBags)
	}

	if bagSize != nil && *bagSize <= 0 {
		return dferrors.Newf(dfcodes.InvalidModelConfig, "bagSize must be positive, got %d", *bagSize)
	}

	return nil
}
