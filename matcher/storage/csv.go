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
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"d7y.io/matcher/internal/dfcodes"
	"d7y.io/matcher/internal/dferrors"
	"d7y.io/matcher/matcher/features"
)

// Table is a parsed csv file stored by columns.
type Table struct {
	Header  []string
	Columns [][]string
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}

	return len(t.Columns[0])
}

// ReadTable parses csv with a header line. Quotes are parsed lazily and leading spaces trimmed.
func ReadTable(r io.Reader) (*Table, error) {
	reader := gocsv.LazyCSVReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dferrors.New(dfcodes.InvalidDataSet, "csv file is empty")
		}

		return nil, dferrors.Newf(dfcodes.InvalidDataSet, "read csv header: %s", err.Error())
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, dferrors.Newf(dfcodes.InvalidDataSet, "read csv: %s", err.Error())
	}

	t := &Table{
		Header:  header,
		Columns: make([][]string, len(header)),
	}
	for i := range t.Columns {
		t.Columns[i] = make([]string, 0, len(records))
	}

	for _, record := range records {
		for i := range header {
			t.Columns[i] = append(t.Columns[i], record[i])
		}
	}

	return t, nil
}

// ReadTableFile parses the csv file at path.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTable(f)
}

// Label is one labeled column of a model.
type Label struct {
	ColumnID uint   `csv:"column_id"`
	Label    string `csv:"label"`
}

// WriteLabels writes labels as csv.
func WriteLabels(path string, labels []*Label) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&labels, f)
}

// ReadLabels reads labels written by WriteLabels keyed by column id.
func ReadLabels(path string) (map[uint]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var labels []*Label
	if err := gocsv.UnmarshalFile(f, &labels); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return map[uint]string{}, nil
		}

		return nil, err
	}

	result := make(map[uint]string, len(labels))
	for _, l := range labels {
		result[l.ColumnID] = l.Label
	}

	return result, nil
}

// WriteCostMatrix writes one csv row per matrix row without header.
func WriteCostMatrix(path string, matrix [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gocsv.DefaultCSVWriter(f)
	for _, row := range matrix {
		record := make([]string, 0, len(row))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCostMatrix reads a matrix written by WriteCostMatrix, an empty file is an empty matrix.
func ReadCostMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := gocsv.DefaultCSVReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	matrix := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, v := range record {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, dferrors.Newf(dfcodes.InvalidModelConfig, "invalid cost %q", v)
			}
			row = append(row, f)
		}
		matrix = append(matrix, row)
	}

	return matrix, nil
}

// WriteFeatureConfig writes the feature config as json.
func WriteFeatureConfig(path string, cfg features.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(cfg)
}

// ReadFeatureConfig reads a config written by WriteFeatureConfig.
func ReadFeatureConfig(path string) (features.Config, error) {
	var cfg features.Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
