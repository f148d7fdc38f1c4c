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

package service

import (
	"bytes"
	"context"

	"d7y.io/matcher/internal/dferrors"
	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/matcher/sampler"
	"d7y.io/matcher/matcher/storage"
	"d7y.io/matcher/matcher/types"
	"d7y.io/matcher/pkg/container/set"
)

func (s *service) CreateDataSet(ctx context.Context, filename string, content []byte, description string, typeMap map[string]string) (*models.Dataset, error) {
	table, err := storage.ReadTable(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	dataset := models.Dataset{
		Filename:    filename,
		Description: description,
		TypeMap:     typeMap,
		Columns:     make([]models.Column, len(table.Header)),
	}

	for i, name := range table.Header {
		dataset.Columns[i] = models.Column{Index: i, Name: name}
	}

	if err := s.sampleColumns(table, &dataset); err != nil {
		return nil, err
	}

	if err := s.datasets.Add(ctx, &dataset, content); err != nil {
		return nil, err
	}

	logger.WithDataSet(dataset.ID).Infof("dataset %s created with %d columns and %d rows", filename, len(dataset.Columns), table.NumRows())
	return &dataset, nil
}

func (s *service) DestroyDataSet(ctx context.Context, id uint) error {
	s.labelMu.Lock()
	defer s.labelMu.Unlock()

	dataset, err := s.datasets.Get(ctx, id)
	if err != nil {
		return err
	}

	columns := set.New[uint]()
	for _, column := range dataset.Columns {
		columns.Add(column.ID)
	}

	values, err := s.models.ListValues(ctx)
	if err != nil {
		return err
	}

	// Models never keep labels of removed columns.
	for _, model := range values {
		labelData := models.LabelData{}
		var stripped bool
		for columnID, label := range model.LabelData {
			if columns.Contains(columnID) {
				stripped = true
				continue
			}

			labelData[columnID] = label
		}

		if !stripped {
			continue
		}

		logger.WithModelAndDataSet(model.ID, id).Infof("strip %d labels of removed dataset", len(model.LabelData)-len(labelData))
		if _, err := s.updateModel(ctx, model.ID, types.UpdateModelRequest{LabelData: labelData}); err != nil {
			return err
		}
	}

	return s.datasets.Remove(ctx, id)
}

func (s *service) UpdateDataSet(ctx context.Context, id uint, json types.UpdateDataSetRequest) (*models.Dataset, error) {
	dataset, err := s.datasets.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if json.Description != nil {
		dataset.Description = *json.Description
	}

	if json.TypeMap != nil {
		dataset.TypeMap = json.TypeMap

		table, err := storage.ReadTableFile(dataset.Path)
		if err != nil {
			return nil, err
		}

		if err := s.sampleColumns(table, dataset); err != nil {
			return nil, err
		}
	}

	if err := s.datasets.Update(ctx, dataset); err != nil {
		return nil, err
	}

	return s.datasets.Get(ctx, id)
}

func (s *service) GetDataSet(ctx context.Context, id uint) (*models.Dataset, error) {
	return s.datasets.Get(ctx, id)
}

func (s *service) GetDataSets(ctx context.Context, q types.GetDataSetsQuery) ([]models.Dataset, int64, error) {
	datasets, err := s.datasets.ListValues(ctx)
	if err != nil {
		return nil, 0, err
	}

	return paginate(datasets, q.Page, q.PerPage), int64(len(datasets)), nil
}

// sampleColumns types and samples every column of the dataset from the table.
func (s *service) sampleColumns(table *storage.Table, dataset *models.Dataset) error {
	for i := range dataset.Columns {
		column := &dataset.Columns[i]
		if column.Index >= len(table.Columns) {
			return dferrors.NotFoundf("column %s is missing in %s", column.Name, dataset.Path)
		}

		typ := sampler.ParseLogicalType(dataset.TypeMap[column.Name])
		sample := sampler.Sample(table.Columns[column.Index], s.config.DataSet.SampleSize)
		if _, err := sampler.Retype(sample, typ); err != nil {
			return dferrors.BadRequestf("column %s is not %s: %s", column.Name, typ, err.Error())
		}

		column.Size = table.NumRows()
		column.LogicalType = string(typ)
		column.Sample = sample
	}

	return nil
}
