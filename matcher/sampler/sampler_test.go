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

package sampler

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	tests := []struct {
		name   string
		column []string
		n      int
		expect func(t *testing.T, sample []string)
	}{
		{
			name:   "empty column",
			column: []string{},
			n:      DefaultSampleSize,
			expect: func(t *testing.T, sample []string) {
				assert := assert.New(t)
				assert.NotNil(sample)
				assert.Len(sample, 0)
			},
		},
		{
			name:   "nil column",
			column: nil,
			n:      DefaultSampleSize,
			expect: func(t *testing.T, sample []string) {
				assert := assert.New(t)
				assert.Len(sample, 0)
			},
		},
		{
			name:   "zero sample size",
			column: []string{"foo"},
			n:      0,
			expect: func(t *testing.T, sample []string) {
				assert := assert.New(t)
				assert.Len(sample, 0)
			},
		},
		{
			name:   "sample size exceeds row count",
			column: []string{"foo", "bar"},
			n:      DefaultSampleSize,
			expect: func(t *testing.T, sample []string) {
				assert := assert.New(t)
				assert.Len(sample, DefaultSampleSize)
				for _, v := range sample {
					assert.Contains([]string{"foo", "bar"}, v)
				}
			},
		},
		{
			name:   "sample is deterministic",
			column: []string{"a", "b", "c", "d", "e", "f", "g"},
			n:      5,
			expect: func(t *testing.T, sample []string) {
				assert := assert.New(t)
				assert.Equal(sample, Sample([]string{"a", "b", "c", "d", "e", "f", "g"}, 5))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, Sample(tc.column, tc.n))
		})
	}
}

func TestRetype(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		typ    LogicalType
		expect func(t *testing.T, values []Value, err error)
	}{
		{
			name:   "integer with malformed entry",
			values: []string{"1", "x", "3"},
			typ:    LogicalTypeInteger,
			expect: func(t *testing.T, values []Value, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]any{int64(1), int64(math.MinInt64), int64(3)}, interfaces(values))
			},
		},
		{
			name:   "float with malformed entry",
			values: []string{"1.5", "foo"},
			typ:    LogicalTypeFloat,
			expect: func(t *testing.T, values []Value, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(1.5, values[0].Float)
				assert.True(math.IsNaN(values[1].Float))
			},
		},
		{
			name:   "boolean",
			values: []string{"true", "false"},
			typ:    LogicalTypeBoolean,
			expect: func(t *testing.T, values []Value, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]any{true, false}, interfaces(values))
			},
		},
		{
			name:   "boolean is case sensitive",
			values: []string{"true", "True"},
			typ:    LogicalTypeBoolean,
			expect: func(t *testing.T, values []Value, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `invalid boolean value "True"`)
				assert.Nil(values)
			},
		},
		{
			name:   "string passes through",
			values: []string{"foo", ""},
			typ:    LogicalTypeString,
			expect: func(t *testing.T, values []Value, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]any{"foo", ""}, interfaces(values))
			},
		},
		{
			name:   "unknown type passes through",
			values: []string{"foo"},
			typ:    LogicalType("DATE"),
			expect: func(t *testing.T, values []Value, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]any{"foo"}, interfaces(values))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := Retype(tc.values, tc.typ)
			tc.expect(t, values, err)
		})
	}
}

func TestParseLogicalType(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(LogicalTypeInteger, ParseLogicalType("integer"))
	assert.Equal(LogicalTypeFloat, ParseLogicalType(" Float "))
	assert.Equal(LogicalTypeBoolean, ParseLogicalType("BOOLEAN"))
	assert.Equal(LogicalTypeString, ParseLogicalType(""))
	assert.Equal(LogicalTypeString, ParseLogicalType("foo"))
}

func TestValue_MarshalJSON(t *testing.T) {
	values, err := Retype([]string{"1.5", "foo"}, LogicalTypeFloat)
	require.NoError(t, err)

	b, err := json.Marshal(values)
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null]`, string(b))
}

func interfaces(values []Value) []any {
	var result []any
	for _, v := range values {
		result = append(result, v.Interface())
	}

	return result
}
