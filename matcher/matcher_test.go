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

package matcher

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/pkg/dfpath"
)

func newTestDfpath(t *testing.T) dfpath.Dfpath {
	dir := t.TempDir()
	d, err := dfpath.New(
		dfpath.WithWorkHome(filepath.Join(dir, "work")),
		dfpath.WithLogDir(filepath.Join(dir, "log")),
		dfpath.WithDataDir(filepath.Join(dir, "data")),
	)
	require.NoError(t, err)
	return d
}

func TestServer_New(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	cfg := config.New()
	cfg.Server.REST.Addr = "127.0.0.1:0"
	d := newTestDfpath(t)

	s, err := New(ctx, cfg, d)
	require.NoError(t, err)
	assert.FileExists(filepath.Join(d.WorkHome(), lockFileName))
	assert.FileExists(filepath.Join(d.DataDir(), config.DefaultSQLiteFileName))
	assert.Nil(s.metricsServer)

	// The work home is owned by the first server.
	_, err = New(ctx, cfg, d)
	assert.Error(err)

	s.Stop()

	// Busy models of the last run are failed on start.
	s, err = New(ctx, cfg, d)
	require.NoError(t, err)
	assert.NoError(s.db.DB.Create(&models.Model{
		Classes: []string{"name"},
		State:   models.TrainState{Status: models.TrainStatusBusy},
	}).Error)
	s.Stop()

	s, err = New(ctx, cfg, d)
	require.NoError(t, err)
	defer s.Stop()

	model := models.Model{}
	assert.NoError(s.db.DB.First(&model).Error)
	assert.Equal(models.TrainStatusError, model.State.Status)
}
