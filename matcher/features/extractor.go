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

	"github.com/mitchellh/mapstructure"

	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/pkg/container/set"
)

// Attribute is the view of a column consumed by extractors.
type Attribute struct {
	ID     uint
	Values []string
}

// Kind is the variant of an extractor.
type Kind int

const (
	// KindSingle extractors produce one feature.
	KindSingle Kind = iota

	// KindGroup extractors produce a fixed list of features.
	KindGroup
)

func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}

	return "single"
}

// Config selects and parameterizes extractors.
type Config struct {
	// ActiveFeatures are names of single extractors.
	ActiveFeatures []string `json:"activeFeatures"`

	// ActiveGroupFeatures are names of group extractors.
	ActiveGroupFeatures []string `json:"activeGroupFeatures"`

	// FeatureExtractorParams are parameters keyed by group extractor name.
	FeatureExtractorParams map[string]map[string]string `json:"featureExtractorParams,omitempty"`
}

// Extractor turns an attribute into a fixed number of features.
type Extractor struct {
	Kind Kind
	Name string

	names   []string
	extract func(values []string) []float64
}

// FeatureNames returns the names of the produced features, single extractors produce their own name.
func (e Extractor) FeatureNames() []string {
	return e.names
}

// Extract computes the features of attr. The result always has len(FeatureNames()) entries
// and undefined computations are reported as 0.
func (e Extractor) Extract(attr Attribute) []float64 {
	out := make([]float64, len(e.names))
	copy(out, e.extract(attr.Values))
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = 0
		}
	}

	return out
}

func newSingle(name string, fn func(values []string) float64) Extractor {
	return Extractor{
		Kind:  KindSingle,
		Name:  name,
		names: []string{name},
		extract: func(values []string) []float64 {
			return []float64{fn(values)}
		},
	}
}

func newGroup(name string, suffixes []string, fn func(values []string) []float64) Extractor {
	names := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		names = append(names, name+"-"+s)
	}

	return Extractor{
		Kind:    KindGroup,
		Name:    name,
		names:   names,
		extract: fn,
	}
}

type groupFactory func(params map[string]string) (Extractor, error)

// SingleExtractorNames lists registered single extractors in registration order.
func SingleExtractorNames() []string {
	names := make([]string, 0, len(singleRegistry))
	for _, r := range singleRegistry {
		names = append(names, r.name)
	}

	return names
}

// GroupExtractorNames lists registered group extractors in registration order.
func GroupExtractorNames() []string {
	names := make([]string, 0, len(groupRegistry))
	for _, r := range groupRegistry {
		names = append(names, r.name)
	}

	return names
}

// DefaultConfig enables every registered extractor with default parameters.
func DefaultConfig() Config {
	return Config{
		ActiveFeatures:      SingleExtractorNames(),
		ActiveGroupFeatures: GroupExtractorNames(),
	}
}

// FromConfig resolves the configured extractors, singles first and each list in its configured order.
// Duplicated names are kept once.
func FromConfig(cfg Config) ([]Extractor, error) {
	var extractors []Extractor
	seen := set.New[string]()

	for _, name := range cfg.ActiveFeatures {
		if seen.Contains(name) {
			continue
		}

		e, ok := lookupSingle(name)
		if !ok {
			return nil, dferrors.BadRequestf("unknown feature extractor %q", name)
		}

		seen.Add(name)
		extractors = append(extractors, e)
	}

	for _, name := range cfg.ActiveGroupFeatures {
		if seen.Contains(name) {
			continue
		}

		factory, ok := lookupGroup(name)
		if !ok {
			return nil, dferrors.BadRequestf("unknown group feature extractor %q", name)
		}

		e, err := factory(cfg.FeatureExtractorParams[name])
		if err != nil {
			return nil, dferrors.BadRequestf("group feature extractor %q: %s", name, err.Error())
		}

		seen.Add(name)
		extractors = append(extractors, e)
	}

	for name := range cfg.FeatureExtractorParams {
		if _, ok := lookupGroup(name); !ok {
			return nil, dferrors.BadRequestf("parameters of unknown group feature extractor %q", name)
		}
	}

	return extractors, nil
}

func lookupSingle(name string) (Extractor, bool) {
	for _, r := range singleRegistry {
		if r.name == name {
			return newSingle(r.name, r.fn), true
		}
	}

	return Extractor{}, false
}

func lookupGroup(name string) (groupFactory, bool) {
	for _, r := range groupRegistry {
		if r.name == name {
			return r.factory, true
		}
	}

	return nil, false
}

func decodeParams(params map[string]string, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      result,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(params)
}
