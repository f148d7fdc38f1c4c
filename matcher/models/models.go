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
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/soft_delete"

	"d7y.io/matcher/matcher/features"
)

// TimePrecision is the precision of every stored time, the time columns are
// declared with millisecond precision on all dialects.
const TimePrecision = time.Millisecond

type BaseModel struct {
	ID        uint                  `gorm:"primarykey;comment:id" json:"id"`
	CreatedAt time.Time             `gorm:"column:created_at;precision:3;comment:created time" json:"created_at"`
	UpdatedAt time.Time             `gorm:"column:updated_at;precision:3;comment:updated time" json:"updated_at"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag;comment:soft delete flag" json:"-"`
}

func scanJSON(val any, dst any) error {
	var ba []byte
	switch v := val.(type) {
	case []byte:
		ba = v
	case string:
		ba = []byte(v)
	case nil:
		return nil
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", val))
	}

	return json.Unmarshal(ba, dst)
}

// LabelData maps column ids to class labels.
type LabelData map[uint]string

func (l LabelData) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	ba, err := json.Marshal(map[uint]string(l))
	return string(ba), err
}

func (l *LabelData) Scan(val any) error {
	t := map[uint]string{}
	if err := scanJSON(val, &t); err != nil {
		return err
	}
	*l = LabelData(t)
	return nil
}

func (LabelData) GormDataType() string {
	return "labeldata"
}

func (LabelData) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

// StringMap is a string to string map stored as json text.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	ba, err := json.Marshal(map[string]string(m))
	return string(ba), err
}

func (m *StringMap) Scan(val any) error {
	t := map[string]string{}
	if err := scanJSON(val, &t); err != nil {
		return err
	}
	*m = StringMap(t)
	return nil
}

func (StringMap) GormDataType() string {
	return "stringmap"
}

func (StringMap) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

// FeaturesConfig is the feature extractor configuration of a model.
type FeaturesConfig features.Config

func (c FeaturesConfig) Value() (driver.Value, error) {
	ba, err := json.Marshal(features.Config(c))
	return string(ba), err
}

func (c *FeaturesConfig) Scan(val any) error {
	t := features.Config{}
	if err := scanJSON(val, &t); err != nil {
		return err
	}
	*c = FeaturesConfig(t)
	return nil
}

func (FeaturesConfig) GormDataType() string {
	return "featuresconfig"
}

func (FeaturesConfig) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}
