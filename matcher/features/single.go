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
	"strings"
	"unicode"
)

const (
	NumUniqueVals                 = "num-unique-vals"
	PropUniqueVals                = "prop-unique-vals"
	PropMissingVals               = "prop-missing-vals"
	RatioAlphaChars               = "ratio-alpha-chars"
	PropNumericalChars            = "prop-numerical-chars"
	PropWhitespaceChars           = "prop-whitespace-chars"
	PropEntriesWithAtSign         = "prop-entries-with-at-sign"
	PropEntriesWithHyphen         = "prop-entries-with-hyphen"
	PropEntriesWithParen          = "prop-entries-with-paren"
	PropEntriesWithCurrencySymbol = "prop-entries-with-currency-symbol"
	ShannonEntropy                = "shannon-entropy"
	IsDiscrete                    = "is-discrete"
)

// discreteRatio is the largest distinct/present ratio of a discrete column.
const discreteRatio = 0.5

var singleRegistry = []struct {
	name string
	fn   func(values []string) float64
}{
	{NumUniqueVals, numUniqueVals},
	{PropUniqueVals, propUniqueVals},
	{PropMissingVals, propMissingVals},
	{RatioAlphaChars, charRatio(unicode.IsLetter)},
	{PropNumericalChars, charRatio(unicode.IsDigit)},
	{PropWhitespaceChars, charRatio(unicode.IsSpace)},
	{PropEntriesWithAtSign, entriesWith(func(r rune) bool { return r == '@' })},
	{PropEntriesWithHyphen, entriesWith(func(r rune) bool { return r == '-' })},
	{PropEntriesWithParen, entriesWith(func(r rune) bool { return r == '(' || r == ')' })},
	{PropEntriesWithCurrencySymbol, entriesWith(func(r rune) bool { return unicode.Is(unicode.Sc, r) })},
	{ShannonEntropy, shannonEntropy},
	{IsDiscrete, isDiscrete},
}

var missingValues = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

func isMissing(v string) bool {
	_, ok := missingValues[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

func counts(values []string) map[string]int {
	m := make(map[string]int, len(values))
	for _, v := range values {
		m[v]++
	}

	return m
}

func numUniqueVals(values []string) float64 {
	return float64(len(counts(values)))
}

func propUniqueVals(values []string) float64 {
	if len(values) == 0 {
		return 0
	}

	return float64(len(counts(values))) / float64(len(values))
}

func propMissingVals(values []string) float64 {
	if len(values) == 0 {
		return 0
	}

	var n int
	for _, v := range values {
		if isMissing(v) {
			n++
		}
	}

	return float64(n) / float64(len(values))
}

func charRatio(match func(r rune) bool) func(values []string) float64 {
	return func(values []string) float64 {
		var total, matched int
		for _, v := range values {
			for _, r := range v {
				total++
				if match(r) {
					matched++
				}
			}
		}

		if total == 0 {
			return 0
		}

		return float64(matched) / float64(total)
	}
}

func entriesWith(match func(r rune) bool) func(values []string) float64 {
	return func(values []string) float64 {
		if len(values) == 0 {
			return 0
		}

		var n int
		for _, v := range values {
			if strings.IndexFunc(v, match) >= 0 {
				n++
			}
		}

		return float64(n) / float64(len(values))
	}
}

// shannonEntropy is the entropy in bits of the value distribution.
func shannonEntropy(values []string) float64 {
	if len(values) == 0 {
		return 0
	}

	var entropy float64
	total := float64(len(values))
	for _, c := range counts(values) {
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

func isDiscrete(values []string) float64 {
	present := make([]string, 0, len(values))
	for _, v := range values {
		if !isMissing(v) {
			present = append(present, v)
		}
	}

	if len(present) == 0 {
		return 0
	}

	if float64(len(counts(present)))/float64(len(present)) <= discreteRatio {
		return 1
	}

	return 0
}
