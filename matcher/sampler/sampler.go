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
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const (
	// DefaultSeed is the fixed seed of column sampling, samples of a column are stable across calls.
	DefaultSeed = 5552

	// DefaultSampleSize is the default number of sampled values.
	DefaultSampleSize = 15
)

// IntegerSentinel replaces integers that fail to parse.
const IntegerSentinel = math.MinInt64

// LogicalType is the declared type of a column.
type LogicalType string

const (
	LogicalTypeString  LogicalType = "STRING"
	LogicalTypeInteger LogicalType = "INTEGER"
	LogicalTypeFloat   LogicalType = "FLOAT"
	LogicalTypeBoolean LogicalType = "BOOLEAN"
)

// LogicalTypes lists all logical types in a fixed order.
var LogicalTypes = []LogicalType{LogicalTypeString, LogicalTypeInteger, LogicalTypeFloat, LogicalTypeBoolean}

// ParseLogicalType parses a declared type case-insensitively, unknown types are STRING.
func ParseLogicalType(s string) LogicalType {
	switch LogicalType(strings.ToUpper(strings.TrimSpace(s))) {
	case LogicalTypeInteger:
		return LogicalTypeInteger
	case LogicalTypeFloat:
		return LogicalTypeFloat
	case LogicalTypeBoolean:
		return LogicalTypeBoolean
	default:
		return LogicalTypeString
	}
}

// Sample draws n values of column with replacement using DefaultSeed.
func Sample(column []string, n int) []string {
	return SampleWithSeed(column, n, DefaultSeed)
}

// SampleWithSeed draws n values of column with replacement, in draw order.
func SampleWithSeed(column []string, n int, seed int64) []string {
	if len(column) == 0 || n <= 0 {
		return []string{}
	}

	r := rand.New(rand.NewSource(seed))
	sample := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sample = append(sample, column[r.Intn(len(column))])
	}

	return sample
}

// Retype coerces raw values to the logical type. Malformed floats become NaN and malformed
// integers become IntegerSentinel, malformed booleans are an error.
func Retype(values []string, typ LogicalType) ([]Value, error) {
	typed := make([]Value, 0, len(values))
	for _, v := range values {
		switch typ {
		case LogicalTypeBoolean:
			switch v {
			case "true":
				typed = append(typed, Value{Type: typ, Bool: true})
			case "false":
				typed = append(typed, Value{Type: typ, Bool: false})
			default:
				return nil, fmt.Errorf("invalid boolean value %q", v)
			}
		case LogicalTypeFloat:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				f = math.NaN()
			}
			typed = append(typed, Value{Type: typ, Float: f})
		case LogicalTypeInteger:
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				i = IntegerSentinel
			}
			typed = append(typed, Value{Type: typ, Int: i})
		default:
			typed = append(typed, Value{Type: LogicalTypeString, String: v})
		}
	}

	return typed, nil
}

// SampleTyped samples column and coerces the sample to typ.
func SampleTyped(column []string, typ LogicalType, n int) ([]Value, error) {
	return Retype(Sample(column, n), typ)
}

// Value is a typed sample value.
type Value struct {
	Type   LogicalType
	String string
	Int    int64
	Float  float64
	Bool   bool
}

// Interface returns the value as its native go type.
func (v Value) Interface() any {
	switch v.Type {
	case LogicalTypeBoolean:
		return v.Bool
	case LogicalTypeFloat:
		return v.Float
	case LogicalTypeInteger:
		return v.Int
	default:
		return v.String
	}
}

// MarshalJSON renders NaN and infinite floats as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Type == LogicalTypeFloat && (math.IsNaN(v.Float) || math.IsInf(v.Float, 0)) {
		return []byte("null"), nil
	}

	return json.Marshal(v.Interface())
}
