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

package dferrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/matcher/internal/dfcodes"
)

func TestDfError_Kind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect func(t *testing.T, err error)
	}{
		{
			name: "not found",
			err:  NotFoundf("model %d not found", 1),
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.True(IsNotFound(err))
				assert.False(IsBadRequest(err))
				assert.EqualError(err, "[1404]model 1 not found")
			},
		},
		{
			name: "wrapped bad request",
			err:  fmt.Errorf("train: %w", New(dfcodes.ModelNotTrained, "model not trained")),
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.True(IsBadRequest(err))
				assert.True(CheckError(err, dfcodes.ModelNotTrained))
				assert.Equal(dfcodes.ModelNotTrained, CodeOf(err))
			},
		},
		{
			name: "plain error is internal",
			err:  errors.New("foo"),
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.Equal(KindInternal, KindOf(err))
				assert.Equal(dfcodes.UnknownError, CodeOf(err))
				assert.False(IsNotFound(err))
				assert.False(CheckError(err, dfcodes.UnknownError))
			},
		},
		{
			name: "nil error",
			err:  nil,
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.False(IsNotFound(err))
				assert.False(IsBadRequest(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, tc.err)
		})
	}
}
