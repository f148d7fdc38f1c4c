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
	"gorm.io/datatypes"

	"d7y.io/matcher/matcher/sampler"
)

type Dataset struct {
	BaseModel
	Filename    string    `gorm:"column:filename;type:varchar(1024);not null;comment:uploaded file name" json:"filename"`
	Path        string    `gorm:"column:path;type:varchar(1024);comment:csv path" json:"path"`
	Description string    `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
	TypeMap     StringMap `gorm:"column:type_map;comment:declared column types" json:"type_map"`
	Columns     []Column  `gorm:"foreignKey:DatasetID" json:"columns"`
}

type Column struct {
	ID          uint                        `gorm:"primarykey;comment:id" json:"id"`
	DatasetID   uint                        `gorm:"index;not null;comment:dataset id" json:"dataset_id"`
	Index       int                         `gorm:"column:col_index;not null;comment:position in file" json:"index"`
	Name        string                      `gorm:"column:name;type:varchar(1024);comment:header name" json:"name"`
	Size        int                         `gorm:"column:size;comment:number of rows" json:"size"`
	LogicalType string                      `gorm:"column:logical_type;type:varchar(32);default:'STRING';comment:logical type" json:"logical_type"`
	Sample      datatypes.JSONSlice[string] `gorm:"column:sample;comment:sampled values" json:"sample"`
}

// TypedSample returns the sample coerced to the column logical type.
func (c *Column) TypedSample() ([]sampler.Value, error) {
	return sampler.Retype(c.Sample, sampler.ParseLogicalType(c.LogicalType))
}
