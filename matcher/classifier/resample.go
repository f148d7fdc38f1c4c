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
	"math/rand"
)

// row is one labeled training vector.
type row struct {
	vector []float64
	label  string
}

// groupByLabel returns rows per label, labels ordered as given.
func groupByLabel(rows []row, labels []string) [][]row {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	groups := make([][]row, len(labels))
	for _, r := range rows {
		if i, ok := index[r.label]; ok {
			groups[i] = append(groups[i], r)
		}
	}

	return groups
}

func classSizes(groups [][]row) (int, int) {
	var total, largest, present int
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}

		present++
		total += len(g)
		if len(g) > largest {
			largest = len(g)
		}
	}

	if present == 0 {
		return 0, 0
	}

	return int(math.Round(float64(total) / float64(present))), largest
}

// drawWithReplacement draws n rows of g.
func drawWithReplacement(g []row, n int, r *rand.Rand) []row {
	out := make([]row, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g[r.Intn(len(g))])
	}

	return out
}

// upsample keeps every row of g and adds random duplicates up to n.
func upsample(g []row, n int, r *rand.Rand) []row {
	out := append([]row{}, g...)
	if len(g) >= n {
		return out
	}

	return append(out, drawWithReplacement(g, n-len(g), r)...)
}

func rebalance(rows []row, labels []string, strategy ResamplingStrategy, r *rand.Rand) []row {
	groups := groupByLabel(rows, labels)
	mean, largest := classSizes(groups)

	var out []row
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}

		switch strategy {
		case ResampleToMean:
			out = append(out, drawWithReplacement(g, mean, r)...)
		case ResampleToMax:
			out = append(out, drawWithReplacement(g, largest, r)...)
		case UpsampleToMax, BaggingToMax:
			out = append(out, upsample(g, largest, r)...)
		case UpsampleToMean, BaggingToMean:
			out = append(out, upsample(g, mean, r)...)
		default:
			out = append(out, g...)
		}
	}

	return out
}

// costWeighted replicates the rows of class i max(1, round(sum_j cost[i][j])) times.
func costWeighted(rows []row, classes []string, costMatrix [][]float64) []row {
	weights := make(map[string]int, len(classes))
	for i, class := range classes {
		if i >= len(costMatrix) {
			break
		}

		var sum float64
		for _, c := range costMatrix[i] {
			sum += c
		}

		w := int(math.Round(sum))
		if w < 1 {
			w = 1
		}
		weights[class] = w
	}

	var out []row
	for _, r := range rows {
		w, ok := weights[r.label]
		if !ok {
			w = 1
		}

		for i := 0; i < w; i++ {
			out = append(out, r)
		}
	}

	return out
}

// resample applies the strategy to the whole training set. Bagging strategies leave it unchanged.
func resample(rows []row, classes, labels []string, settings Settings, r *rand.Rand) []row {
	switch settings.ResamplingStrategy {
	case ResampleToMean, ResampleToMax, UpsampleToMax, UpsampleToMean:
		return rebalance(rows, labels, settings.ResamplingStrategy, r)
	case CostMatrix:
		return costWeighted(rows, classes, settings.CostMatrix)
	default:
		return rows
	}
}

// bag draws a bootstrap sample of size n and rebalances it for BaggingToMax and BaggingToMean.
func bag(rows []row, labels []string, n int, strategy ResamplingStrategy, r *rand.Rand) []row {
	if n <= 0 {
		n = len(rows)
	}

	sample := drawWithReplacement(rows, n, r)
	switch strategy {
	case BaggingToMax, BaggingToMean:
		return rebalance(sample, labels, strategy, r)
	default:
		return sample
	}
}
