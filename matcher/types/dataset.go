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

package types

import "mime/multipart"

type DataSetParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateDataSetRequest struct {
	File        *multipart.FileHeader `form:"file" binding:"required"`
	Description string                `form:"description" binding:"omitempty,max=1024"`

	// TypeMap is a json object of column name to logical type.
	TypeMap string `form:"type_map" binding:"omitempty,json"`
}

type UpdateDataSetRequest struct {
	Description *string           `json:"description" binding:"omitempty,max=1024"`
	TypeMap     map[string]string `json:"type_map" binding:"omitempty"`
}

type GetDataSetsQuery struct {
	Page    int `form:"page" binding:"omitempty,gte=1"`
	PerPage int `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}
