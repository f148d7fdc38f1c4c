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

package prediction

import (
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
)

// WriteReport writes one row per prediction: id, label, confidence, the score of
// every class and the value of every feature.
func WriteReport(path string, classes, featureNames []string, predictions []ColumnPrediction) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gocsv.DefaultCSVWriter(f)
	header := append([]string{"id", "label", "confidence"}, classes...)
	header = append(header, featureNames...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range predictions {
		record := make([]string, 0, len(header))
		record = append(record, strconv.FormatUint(uint64(p.ColumnID), 10), p.Label, formatFloat(p.Confidence))
		for _, class := range classes {
			record = append(record, formatFloat(p.Scores[class]))
		}

		for _, name := range featureNames {
			record = append(record, formatFloat(p.Features[name]))
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
