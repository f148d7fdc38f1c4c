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

// Builder builds feature vectors of a fixed layout.
type Builder struct {
	extractors []Extractor
	names      []string
}

// NewBuilder returns a builder, the layout is derived once from the extractors.
func NewBuilder(extractors []Extractor) *Builder {
	names := []string{}
	for _, e := range extractors {
		names = append(names, e.FeatureNames()...)
	}

	return &Builder{
		extractors: extractors,
		names:      names,
	}
}

// FeatureNames returns the flattened feature names.
func (b *Builder) FeatureNames() []string {
	return b.names
}

// Build returns one vector per attribute and the parallel feature names.
func (b *Builder) Build(attrs []Attribute) ([][]float64, []string) {
	vectors := make([][]float64, 0, len(attrs))
	for _, attr := range attrs {
		vectors = append(vectors, b.BuildOne(attr))
	}

	return vectors, b.names
}

// BuildOne returns the vector of one attribute.
func (b *Builder) BuildOne(attr Attribute) []float64 {
	vector := make([]float64, 0, len(b.names))
	for _, e := range b.extractors {
		vector = append(vector, e.Extract(attr)...)
	}

	return vector
}
