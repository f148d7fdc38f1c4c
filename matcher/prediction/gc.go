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
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/pkg/gc"
)

const (
	// ReportGCID is the gc task id of prediction reports.
	ReportGCID = "prediction-report"

	reportPattern = "model-*-dataset-*.csv"
)

type reportGC struct {
	dir string
	ttl time.Duration
}

// NewReportGC returns a gc runner removing reports in dir older than ttl.
func NewReportGC(dir string, ttl time.Duration) gc.Runner {
	return &reportGC{dir: dir, ttl: ttl}
}

func (r *reportGC) RunGC(ctx context.Context) error {
	paths, err := filepath.Glob(filepath.Join(r.dir, reportPattern))
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return multierror.Append(errs, err).ErrorOrNil()
		}

		info, err := os.Stat(path)
		if err != nil {
			if !os.IsNotExist(err) {
				errs = multierror.Append(errs, err)
			}
			continue
		}

		if time.Since(info.ModTime()) < r.ttl {
			continue
		}

		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = multierror.Append(errs, err)
			continue
		}

		logger.Infof("prediction report %s is expired and removed", path)
	}

	return errs.ErrorOrNil()
}
