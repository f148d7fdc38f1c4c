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

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/pkg/sync"
)

type datasetStorage struct {
	db      *gorm.DB
	baseDir string
	kmu     *sync.Kmutex
}

// NewDatasetStorage returns a dataset storage keeping csv files in baseDir.
func NewDatasetStorage(db *gorm.DB, baseDir string) DatasetStorage {
	return &datasetStorage{
		db:      db,
		baseDir: baseDir,
		kmu:     sync.NewKmutex(),
	}
}

func (s *datasetStorage) Get(ctx context.Context, id uint) (*models.Dataset, error) {
	dataset := models.Dataset{}
	if err := s.db.WithContext(ctx).Preload("Columns", func(db *gorm.DB) *gorm.DB {
		return db.Order("col_index")
	}).First(&dataset, id).Error; err != nil {
		return nil, convertError(err, "dataset %d not found", id)
	}

	return &dataset, nil
}

func (s *datasetStorage) Add(ctx context.Context, dataset *models.Dataset, content []byte) error {
	var path string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dataset).Error; err != nil {
			return err
		}

		path = s.datasetFilename(dataset.ID)
		if err := os.WriteFile(path, content, 0600); err != nil {
			return err
		}

		dataset.Path = path
		return tx.Model(dataset).Update("path", path).Error
	})
	if err != nil {
		if path != "" {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logger.WithDataSet(dataset.ID).Warnf("remove dataset file failed: %s", err.Error())
			}
		}

		return err
	}

	return nil
}

func (s *datasetStorage) Update(ctx context.Context, dataset *models.Dataset) error {
	s.kmu.Lock(dataset.ID)
	defer s.kmu.Unlock(dataset.ID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Dataset{}, dataset.ID).Error; err != nil {
			return convertError(err, "dataset %d not found", dataset.ID)
		}

		for i := range dataset.Columns {
			if err := tx.Save(&dataset.Columns[i]).Error; err != nil {
				return err
			}
		}

		return tx.Omit("Columns").Save(dataset).Error
	})
}

func (s *datasetStorage) Remove(ctx context.Context, id uint) error {
	s.kmu.Lock(id)
	defer s.kmu.Unlock(id)

	dataset := models.Dataset{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dataset, id).Error; err != nil {
			return convertError(err, "dataset %d not found", id)
		}

		if err := tx.Where("dataset_id = ?", id).Delete(&models.Column{}).Error; err != nil {
			return err
		}

		return tx.Delete(&dataset).Error
	}); err != nil {
		return err
	}

	if dataset.Path != "" {
		if err := os.Remove(dataset.Path); err != nil && !os.IsNotExist(err) {
			logger.WithDataSet(id).Warnf("remove dataset file failed: %s", err.Error())
		}
	}

	return nil
}

func (s *datasetStorage) Keys(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := s.db.WithContext(ctx).Model(&models.Dataset{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *datasetStorage) ListValues(ctx context.Context) ([]models.Dataset, error) {
	var datasets []models.Dataset
	if err := s.db.WithContext(ctx).Preload("Columns", func(db *gorm.DB) *gorm.DB {
		return db.Order("col_index")
	}).Order("id").Find(&datasets).Error; err != nil {
		return nil, err
	}

	return datasets, nil
}

func (s *datasetStorage) ColumnMap(ctx context.Context) (map[uint]models.Column, error) {
	var columns []models.Column
	if err := s.db.WithContext(ctx).Find(&columns).Error; err != nil {
		return nil, err
	}

	result := make(map[uint]models.Column, len(columns))
	for _, column := range columns {
		result[column.ID] = column
	}

	return result, nil
}

func (s *datasetStorage) ReadColumns(ctx context.Context, dataset *models.Dataset) ([]features.Attribute, error) {
	table, err := ReadTableFile(dataset.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dferrors.NotFoundf("dataset %d file not found", dataset.ID)
		}

		return nil, err
	}

	attrs := make([]features.Attribute, 0, len(dataset.Columns))
	for _, column := range dataset.Columns {
		if column.Index < 0 || column.Index >= len(table.Columns) {
			return nil, dferrors.Newf(dfcodes.InvalidDataSet, "dataset %d has no column at %d", dataset.ID, column.Index)
		}

		attrs = append(attrs, features.Attribute{ID: column.ID, Values: table.Columns[column.Index]})
	}

	return attrs, nil
}

// datasetFilename generates dataset file name based on the given id.
func (s *datasetStorage) datasetFilename(id uint) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s-%d.%s", DataSetFilePrefix, id, CSVFileExt))
}
