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

import "d7y.io/matcher/matcher/features"

type ModelParams struct {
	ID uint `uri:"id" binding:"required"`
}

type PredictModelParams struct {
	ID        uint `uri:"id" binding:"required"`
	DataSetID uint `uri:"dataset_id" binding:"required"`
}

type CreateModelRequest struct {
	Description        string           `json:"description" binding:"omitempty,max=1024"`
	Classes            []string         `json:"classes" binding:"required,min=1,unique,dive,required"`
	Features           *features.Config `json:"features" binding:"omitempty"`
	CostMatrix         [][]float64      `json:"cost_matrix" binding:"omitempty"`
	ResamplingStrategy string           `json:"resampling_strategy" binding:"omitempty,oneof=NoResampling ResampleToMean ResampleToMax UpsampleToMax UpsampleToMean CostMatrix Bagging BaggingToMax BaggingToMean"`
	LabelData          map[uint]string  `json:"label_data" binding:"omitempty"`
	NumBags            *int             `json:"num_bags" binding:"omitempty,gt=0"`
	BagSize            *int             `json:"bag_size" binding:"omitempty,gt=0"`
}

// UpdateModelRequest is merged over the model, absent fields keep their value.
// An empty label_data object clears the labels.
type UpdateModelRequest struct {
	Description        *string          `json:"description" binding:"omitempty,max=1024"`
	Classes            []string         `json:"classes" binding:"omitempty,min=1,unique,dive,required"`
	Features           *features.Config `json:"features" binding:"omitempty"`
	CostMatrix         [][]float64      `json:"cost_matrix" binding:"omitempty"`
	ResamplingStrategy *string          `json:"resampling_strategy" binding:"omitempty,oneof=NoResampling ResampleToMean ResampleToMax UpsampleToMax UpsampleToMean CostMatrix Bagging BaggingToMax BaggingToMean"`
	LabelData          map[uint]string  `json:"label_data" binding:"omitempty"`
	NumBags            *int             `json:"num_bags" binding:"omitempty,gt=0"`
	BagSize            *int             `json:"bag_size" binding:"omitempty,gt=0"`
}

type GetModelsQuery struct {
	Page    int `form:"page" binding:"omitempty,gte=1"`
	PerPage int `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}
