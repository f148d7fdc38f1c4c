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
	"time"

	"github.com/hashicorp/go-multierror"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/pkg/gc"
)

// ArtifactGCID is the gc task id of interrupted artifact writes.
const ArtifactGCID = "model-artifact"

type artifactGC struct {
	baseDir string
	ttl     time.Duration
}

// NewArtifactGC returns a gc runner removing temporary artifact files older
// than ttl from the model workspaces in baseDir.
func NewArtifactGC(baseDir string, ttl time.Duration) gc.Runner {
	return &artifactGC{baseDir: baseDir, ttl: ttl}
}

func (a *artifactGC) RunGC(ctx context.Context) error {
	pattern := filepath.Join(a.baseDir, fmt.Sprintf("%s-*", ModelWorkspacePrefix), fmt.Sprintf("%s.*.tmp", ArtifactFileName))
	paths, err := filepath.Glob(pattern)
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

		if time.Since(info.ModTime()) < a.ttl {
			continue
		}

		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			errs = multierror.Append(errs, err)
			continue
		}

		logger.Infof("temporary artifact %s is removed", path)
	}

	return errs.ErrorOrNil()
}
