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

package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/sampler"
)

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		expect func(t *testing.T, extractors []Extractor, err error)
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(extractors, len(SingleExtractorNames())+len(GroupExtractorNames()))
				assert.Equal(KindSingle, extractors[0].Kind)
				assert.Equal(KindGroup, extractors[len(extractors)-1].Kind)
			},
		},
		{
			name:   "empty config",
			config: Config{},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(extractors, 0)
			},
		},
		{
			name: "keeps configured order and drops duplicates",
			config: Config{
				ActiveFeatures:      []string{ShannonEntropy, NumUniqueVals, ShannonEntropy},
				ActiveGroupFeatures: []string{InferredDataType},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(extractors, 3)
				assert.Equal(ShannonEntropy, extractors[0].Name)
				assert.Equal(NumUniqueVals, extractors[1].Name)
				assert.Equal([]string{
					"inferred-data-type-string",
					"inferred-data-type-integer",
					"inferred-data-type-float",
					"inferred-data-type-boolean",
				}, extractors[2].FeatureNames())
			},
		},
		{
			name: "unknown single extractor",
			config: Config{
				ActiveFeatures: []string{"foo"},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsBadRequest(err))
				assert.Nil(extractors)
			},
		},
		{
			name: "unknown group extractor",
			config: Config{
				ActiveGroupFeatures: []string{"foo"},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsBadRequest(err))
			},
		},
		{
			name: "char dist params",
			config: Config{
				ActiveGroupFeatures:    []string{CharDistFeatures},
				FeatureExtractorParams: map[string]map[string]string{CharDistFeatures: {"chars": "@@-"}},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{"char-dist-features-@", "char-dist-features--"}, extractors[0].FeatureNames())
			},
		},
		{
			name: "unknown char dist param",
			config: Config{
				ActiveGroupFeatures:    []string{CharDistFeatures},
				FeatureExtractorParams: map[string]map[string]string{CharDistFeatures: {"foo": "bar"}},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsBadRequest(err))
			},
		},
		{
			name: "params of extractor without params",
			config: Config{
				ActiveGroupFeatures:    []string{StatsOfTextLength},
				FeatureExtractorParams: map[string]map[string]string{StatsOfTextLength: {"foo": "bar"}},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsBadRequest(err))
			},
		},
		{
			name: "params of unknown extractor",
			config: Config{
				FeatureExtractorParams: map[string]map[string]string{"foo": {"chars": "a"}},
			},
			expect: func(t *testing.T, extractors []Extractor, err error) {
				assert := assert.New(t)
				assert.True(dferrors.IsBadRequest(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			extractors, err := FromConfig(tc.config)
			tc.expect(t, extractors, err)
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		values []string
		expect func(t *testing.T, features []float64)
	}{
		{
			name:   "unique and missing values",
			config: Config{ActiveFeatures: []string{NumUniqueVals, PropUniqueVals, PropMissingVals}},
			values: []string{"a", "a", "", "NULL"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.Equal([]float64{3, 0.75, 0.5}, features)
			},
		},
		{
			name:   "char ratios",
			config: Config{ActiveFeatures: []string{RatioAlphaChars, PropNumericalChars, PropWhitespaceChars}},
			values: []string{"ab 1", "2"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.InDeltaSlice([]float64{0.4, 0.4, 0.2}, features, 1e-9)
			},
		},
		{
			name: "entries with symbols",
			config: Config{ActiveFeatures: []string{
				PropEntriesWithAtSign, PropEntriesWithHyphen, PropEntriesWithParen, PropEntriesWithCurrencySymbol,
			}},
			values: []string{"foo@bar.com", "555-1234", "(555)", "$10", "€5"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.InDeltaSlice([]float64{0.2, 0.2, 0.2, 0.4}, features, 1e-9)
			},
		},
		{
			name:   "entropy and discreteness",
			config: Config{ActiveFeatures: []string{ShannonEntropy, IsDiscrete}},
			values: []string{"a", "b", "a", "b"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.InDeltaSlice([]float64{1, 1}, features, 1e-9)
			},
		},
		{
			name:   "stats of text length",
			config: Config{ActiveGroupFeatures: []string{StatsOfTextLength}},
			values: []string{"a", "abc", "ab"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.Len(features, 5)
				assert.InDeltaSlice([]float64{1, 3, 2, 2}, features[:4], 1e-9)
				assert.InDelta(0.8164965809, features[4], 1e-9)
			},
		},
		{
			name:   "stats of numerical type without numbers",
			config: Config{ActiveGroupFeatures: []string{StatsOfNumericalType}},
			values: []string{"foo", "bar"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.Equal([]float64{0, 0, 0, 0, 0}, features)
			},
		},
		{
			name:   "inferred data type",
			config: Config{ActiveGroupFeatures: []string{InferredDataType}},
			values: []string{"1.5", "2", ""},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.Equal([]float64{0, 0, 1, 0}, features)
			},
		},
		{
			name:   "char dist features",
			config: Config{ActiveGroupFeatures: []string{CharDistFeatures}, FeatureExtractorParams: map[string]map[string]string{CharDistFeatures: {"chars": "@."}}},
			values: []string{"a@b.c"},
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				assert.InDeltaSlice([]float64{0.2, 0.2}, features, 1e-9)
			},
		},
		{
			name:   "empty attribute",
			config: DefaultConfig(),
			values: nil,
			expect: func(t *testing.T, features []float64) {
				assert := assert.New(t)
				extractors, err := FromConfig(DefaultConfig())
				require.NoError(t, err)
				assert.Len(features, len(NewBuilder(extractors).FeatureNames()))
				assert.Equal(0.0, features[0])
				for _, f := range features {
					assert.False(math.IsNaN(f))
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			extractors, err := FromConfig(tc.config)
			require.NoError(t, err)
			tc.expect(t, NewBuilder(extractors).BuildOne(Attribute{ID: 1, Values: tc.values}))
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		attrs  []Attribute
		expect func(t *testing.T, vectors [][]float64, names []string)
	}{
		{
			name:   "empty extractors yield zero length vectors",
			config: Config{},
			attrs:  []Attribute{{ID: 1, Values: []string{"foo"}}, {ID: 2}},
			expect: func(t *testing.T, vectors [][]float64, names []string) {
				assert := assert.New(t)
				assert.Len(vectors, 2)
				assert.Len(vectors[0], 0)
				assert.Len(vectors[1], 0)
				assert.Len(names, 0)
			},
		},
		{
			name:   "vector length is independent of content",
			config: DefaultConfig(),
			attrs: []Attribute{
				{ID: 1, Values: []string{"foo@bar.com", "bar@baz.org"}},
				{ID: 2, Values: []string{"1", "2", "3", "x"}},
				{ID: 3},
			},
			expect: func(t *testing.T, vectors [][]float64, names []string) {
				assert := assert.New(t)
				assert.Len(vectors, 3)
				for _, v := range vectors {
					assert.Len(v, len(names))
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			extractors, err := FromConfig(tc.config)
			require.NoError(t, err)
			vectors, names := NewBuilder(extractors).Build(tc.attrs)
			tc.expect(t, vectors, names)
		})
	}
}

func TestInferLogicalType(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(sampler.LogicalTypeBoolean, InferLogicalType([]string{"true", "FALSE"}))
	assert.Equal(sampler.LogicalTypeInteger, InferLogicalType([]string{"1", "-2", "NA"}))
	assert.Equal(sampler.LogicalTypeFloat, InferLogicalType([]string{"1", "2.5"}))
	assert.Equal(sampler.LogicalTypeString, InferLogicalType([]string{"1", "foo"}))
	assert.Equal(sampler.LogicalTypeString, InferLogicalType([]string{"", "null"}))
}
