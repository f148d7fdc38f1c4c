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

package dfcodes

// Code is the error code carried by matcher errors.
type Code int32

const (
	// success code 200-299
	Success Code = 200

	// common response error 1000-1999
	BadRequest   Code = 1400
	NotFound     Code = 1404
	UnknownError Code = 1500

	// matcher response error 8000-8999
	MatcherError       Code = 8000
	ModelNotTrained    Code = 8001 // predict requested on an inconsistent model
	InvalidModelConfig Code = 8002
	InvalidDataSet     Code = 8003
	MatcherStoreError  Code = 8004
)
