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
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/montanaflynn/stats"

	"d7y.io/matcher/matcher/sampler"
)

const (
	StatsOfTextLength    = "stats-of-text-length"
	StatsOfNumericalType = "stats-of-numerical-type"
	InferredDataType     = "inferred-data-type"
	CharDistFeatures     = "char-dist-features"
)

// DefaultCharDistChars are the characters counted by char-dist-features.
const DefaultCharDistChars = "@-/.,:()$%#"

var statsSuffixes = []string{"min", "max", "mean", "median", "stddev"}

var groupRegistry = []struct {
	name    string
	factory groupFactory
}{
	{StatsOfTextLength, noParams(StatsOfTextLength, statsSuffixes, statsOfTextLength)},
	{StatsOfNumericalType, noParams(StatsOfNumericalType, statsSuffixes, statsOfNumericalType)},
	{InferredDataType, noParams(InferredDataType, inferredDataTypeSuffixes(), inferredDataType)},
	{CharDistFeatures, charDistFeatures},
}

func noParams(name string, suffixes []string, fn func(values []string) []float64) groupFactory {
	return func(params map[string]string) (Extractor, error) {
		if len(params) > 0 {
			return Extractor{}, errors.New("extractor has no parameters")
		}

		return newGroup(name, suffixes, fn), nil
	}
}

func describe(data stats.Float64Data) []float64 {
	if len(data) == 0 {
		return make([]float64, len(statsSuffixes))
	}

	minimum, _ := stats.Min(data)
	maximum, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stddev, _ := stats.StandardDeviation(data)
	return []float64{minimum, maximum, mean, median, stddev}
}

func statsOfTextLength(values []string) []float64 {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		data = append(data, float64(utf8.RuneCountInString(v)))
	}

	return describe(data)
}

func statsOfNumericalType(values []string) []float64 {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		data = append(data, f)
	}

	return describe(data)
}

func inferredDataTypeSuffixes() []string {
	suffixes := make([]string, 0, len(sampler.LogicalTypes))
	for _, t := range sampler.LogicalTypes {
		suffixes = append(suffixes, strings.ToLower(string(t)))
	}

	return suffixes
}

// InferLogicalType infers the narrowest logical type of the present values.
func InferLogicalType(values []string) sampler.LogicalType {
	var present int
	isBool, isInt, isFloat := true, true, true
	for _, v := range values {
		if isMissing(v) {
			continue
		}
		present++

		v = strings.TrimSpace(v)
		if lv := strings.ToLower(v); lv != "true" && lv != "false" {
			isBool = false
		}

		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			isInt = false
		}

		if _, err := strconv.ParseFloat(v, 64); err != nil {
			isFloat = false
		}
	}

	switch {
	case present == 0:
		return sampler.LogicalTypeString
	case isBool:
		return sampler.LogicalTypeBoolean
	case isInt:
		return sampler.LogicalTypeInteger
	case isFloat:
		return sampler.LogicalTypeFloat
	default:
		return sampler.LogicalTypeString
	}
}

func inferredDataType(values []string) []float64 {
	inferred := InferLogicalType(values)
	out := make([]float64, len(sampler.LogicalTypes))
	for i, t := range sampler.LogicalTypes {
		if t == inferred {
			out[i] = 1
		}
	}

	return out
}

type charDistParams struct {
	Chars string `mapstructure:"chars"`
}

func charDistFeatures(params map[string]string) (Extractor, error) {
	p := charDistParams{Chars: DefaultCharDistChars}
	if err := decodeParams(params, &p); err != nil {
		return Extractor{}, err
	}

	var chars []rune
	seen := map[rune]struct{}{}
	for _, r := range p.Chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		chars = append(chars, r)
	}

	if len(chars) == 0 {
		return Extractor{}, errors.New("chars is empty")
	}

	suffixes := make([]string, 0, len(chars))
	for _, r := range chars {
		suffixes = append(suffixes, string(r))
	}

	return newGroup(CharDistFeatures, suffixes, func(values []string) []float64 {
		out := make([]float64, len(chars))
		var total int
		for _, v := range values {
			for _, r := range v {
				total++
				for i, c := range chars {
					if r == c {
						out[i]++
					}
				}
			}
		}

		if total == 0 {
			return out
		}

		for i := range out {
			out[i] /= float64(total)
		}
		return out
	}), nil
}
