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

// absent marks a canonical class the classifier never saw.
const absent = -1

// Aligner maps probabilities from the classifier's native label order to the canonical class order.
type Aligner struct {
	classes []string
	index   []int
}

// NewAligner computes the native index of every canonical class once.
func NewAligner(classes, nativeLabels []string) *Aligner {
	native := make(map[string]int, len(nativeLabels))
	for j, label := range nativeLabels {
		if _, ok := native[label]; !ok {
			native[label] = j
		}
	}

	index := make([]int, len(classes))
	for i, class := range classes {
		j, ok := native[class]
		if !ok {
			j = absent
		}
		index[i] = j
	}

	return &Aligner{
		classes: classes,
		index:   index,
	}
}

// Classes returns the canonical classes.
func (a *Aligner) Classes() []string {
	return a.classes
}

// Align reorders probs into canonical order, absent classes get 0.
func (a *Aligner) Align(probs []float64) []float64 {
	aligned := make([]float64, len(a.index))
	for i, j := range a.index {
		if j == absent || j >= len(probs) {
			continue
		}
		aligned[i] = probs[j]
	}

	return aligned
}

// Predict aligns probs and returns the canonical class with the highest probability,
// the first maximum wins ties.
func (a *Aligner) Predict(probs []float64) (string, float64, []float64) {
	aligned := a.Align(probs)
	if len(aligned) == 0 {
		return "", 0, aligned
	}

	best := 0
	for i := 1; i < len(aligned); i++ {
		if aligned[i] > aligned[best] {
			best = i
		}
	}

	return a.classes[best], aligned[best], aligned
}
