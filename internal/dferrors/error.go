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

	"d7y.io/matcher/internal/dfcodes"
)

// common and framework errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDataNotFound    = errors.New("data not found")
	ErrEmptyValue      = errors.New("empty value")
)

// Kind groups error codes the way callers react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
)

type DfError struct {
	Code    dfcodes.Code
	Message string
}

func (s *DfError) Error() string {
	return fmt.Sprintf("[%d]%s", s.Code, s.Message)
}

// Kind returns the kind of the error code.
func (s *DfError) Kind() Kind {
	switch s.Code {
	case dfcodes.NotFound:
		return KindNotFound
	case dfcodes.BadRequest, dfcodes.ModelNotTrained, dfcodes.InvalidModelConfig, dfcodes.InvalidDataSet:
		return KindBadRequest
	default:
		return KindInternal
	}
}

func New(code dfcodes.Code, msg string) *DfError {
	return &DfError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code dfcodes.Code, format string, a ...any) *DfError {
	return &DfError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// NotFoundf returns an error of kind NotFound.
func NotFoundf(format string, a ...any) *DfError {
	return Newf(dfcodes.NotFound, format, a...)
}

// BadRequestf returns an error of kind BadRequest.
func BadRequestf(format string, a ...any) *DfError {
	return Newf(dfcodes.BadRequest, format, a...)
}

// Internalf returns an error of kind Internal.
func Internalf(format string, a ...any) *DfError {
	return Newf(dfcodes.UnknownError, format, a...)
}

// KindOf returns the kind of err, errors which are not DfError are internal.
func KindOf(err error) Kind {
	var e *DfError
	if errors.As(err, &e) {
		return e.Kind()
	}

	return KindInternal
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsBadRequest(err error) bool {
	return err != nil && KindOf(err) == KindBadRequest
}

func CheckError(err error, code dfcodes.Code) bool {
	if err == nil {
		return false
	}

	var e *DfError
	return errors.As(err, &e) && e.Code == code
}

// CodeOf returns the code of err, UnknownError when err is not a DfError.
func CodeOf(err error) dfcodes.Code {
	var e *DfError
	if errors.As(err, &e) {
		return e.Code
	}

	return dfcodes.UnknownError
}
