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

package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// TrainStatusUntrained represents the model has no usable artifact.
	TrainStatusUntrained = "UNTRAINED"

	// TrainStatusBusy represents the model is being trained.
	TrainStatusBusy = "BUSY"

	// TrainStatusComplete represents the model has a usable artifact.
	TrainStatusComplete = "COMPLETE"

	// TrainStatusError represents the last training of the model failed.
	TrainStatusError = "ERROR"
)

// TrainState is the training status of a model.
type TrainState struct {
	Status      string    `gorm:"column:status;type:varchar(32);default:'UNTRAINED';comment:train status" json:"status"`
	Message     string    `gorm:"column:message;type:text;comment:train message" json:"message"`
	DateCreated time.Time `gorm:"column:date_created;precision:3;comment:train state created time" json:"date_created"`
	DateChanged time.Time `gorm:"column:date_changed;precision:3;comment:train state changed time" json:"date_changed"`
}

type Model struct {
	BaseModel
	Description        string                         `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
	ModelType          string                         `gorm:"column:model_type;type:varchar(256);default:'randomForest';comment:model type" json:"model_type"`
	Classes            datatypes.JSONSlice[string]    `gorm:"column:classes;comment:canonical classes" json:"classes"`
	Features           FeaturesConfig                 `gorm:"column:features;comment:feature extractors" json:"features"`
	CostMatrix         datatypes.JSONSlice[[]float64] `gorm:"column:cost_matrix;comment:cost matrix" json:"cost_matrix"`
	ResamplingStrategy string                         `gorm:"column:resampling_strategy;type:varchar(256);default:'NoResampling';comment:resampling strategy" json:"resampling_strategy"`
	LabelData          LabelData                      `gorm:"column:label_data;comment:column labels" json:"label_data"`
	RefDataSets        datatypes.JSONSlice[uint]      `gorm:"column:ref_datasets;comment:datasets referenced by label data" json:"ref_datasets"`
	ModelPath          string                         `gorm:"column:model_path;type:varchar(1024);comment:artifact path" json:"model_path"`
	State              TrainState                     `gorm:"embedded;embeddedPrefix:state_" json:"state"`
	NumBags            *int                           `gorm:"column:num_bags;comment:number of bags" json:"num_bags"`
	BagSize            *int                           `gorm:"column:bag_size;comment:size of bags" json:"bag_size"`
}
