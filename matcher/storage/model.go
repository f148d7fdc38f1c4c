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
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"

	"d7y.io/matcher/internal/dferrors"
	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/features"
	"d7y.io/matcher/matcher/models"
	"d7y.io/matcher/pkg/sync"
)

var trainStateColumns = []string{"state_status", "state_message", "state_date_created", "state_date_changed", "model_path"}

type modelStorage struct {
	db      *gorm.DB
	baseDir string
	loader  *classifier.Loader
	kmu     *sync.Kmutex
}

// NewModelStorage returns a model storage keeping workspaces in baseDir.
func NewModelStorage(db *gorm.DB, baseDir string, loader *classifier.Loader) ModelStorage {
	return &modelStorage{
		db:      db,
		baseDir: baseDir,
		loader:  loader,
		kmu:     sync.NewKmutex(),
	}
}

func (s *modelStorage) Get(ctx context.Context, id uint) (*models.Model, error) {
	model := models.Model{}
	if err := s.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, convertError(err, "model %d not found", id)
	}

	return &model, nil
}

func (s *modelStorage) Add(ctx context.Context, model *models.Model) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}

		return os.MkdirAll(s.workspace(model.ID), 0700)
	})
}

func (s *modelStorage) Update(ctx context.Context, model *models.Model) error {
	s.kmu.Lock(model.ID)
	defer s.kmu.Unlock(model.ID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Model{}, model.ID).Error; err != nil {
			return convertError(err, "model %d not found", model.ID)
		}

		// Train state and artifact are only written by UpdateTrainState and WriteArtifact.
		return tx.Omit(trainStateColumns...).Save(model).Error
	})
}

func (s *modelStorage) Remove(ctx context.Context, id uint) error {
	s.kmu.Lock(id)
	defer s.kmu.Unlock(id)

	model := models.Model{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, id).Error; err != nil {
			return convertError(err, "model %d not found", id)
		}

		return tx.Delete(&model).Error
	}); err != nil {
		return err
	}

	var errs *multierror.Error
	if model.ModelPath != "" {
		if err := os.Remove(model.ModelPath); err != nil && !os.IsNotExist(err) {
			errs = multierror.Append(errs, err)
		}
	}

	if err := os.RemoveAll(s.workspace(id)); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		logger.WithModel(id).Warnf("remove model files failed: %s", err.Error())
	}

	return nil
}

func (s *modelStorage) Keys(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := s.db.WithContext(ctx).Model(&models.Model{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *modelStorage) ListValues(ctx context.Context) ([]models.Model, error) {
	var result []models.Model
	if err := s.db.WithContext(ctx).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (s *modelStorage) UpdateTrainState(ctx context.Context, id uint, status, message string, deleteArtifact, changeDate bool) (*models.Model, error) {
	s.kmu.Lock(id)
	defer s.kmu.Unlock(id)

	model := models.Model{}
	var artifact string
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, id).Error; err != nil {
			return convertError(err, "model %d not found", id)
		}

		now := time.Now()
		model.State.Status = status
		model.State.Message = message
		if model.State.DateCreated.IsZero() {
			model.State.DateCreated = now
		}

		if changeDate {
			model.State.DateChanged = now
		}

		if deleteArtifact {
			artifact = model.ModelPath
			model.ModelPath = ""
		}

		return tx.Save(&model).Error
	}); err != nil {
		return nil, err
	}

	removeArtifact(id, artifact)
	return &model, nil
}

func (s *modelStorage) UpdateWithTrainState(ctx context.Context, model *models.Model, status string) (*models.Model, error) {
	s.kmu.Lock(model.ID)
	defer s.kmu.Unlock(model.ID)

	var artifact string
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := models.Model{}
		if err := tx.First(&current, model.ID).Error; err != nil {
			return convertError(err, "model %d not found", model.ID)
		}

		now := time.Now()
		model.State = current.State
		model.State.Status = status
		model.State.Message = ""
		if model.State.DateCreated.IsZero() {
			model.State.DateCreated = now
		}
		model.State.DateChanged = now

		artifact = current.ModelPath
		model.ModelPath = ""
		return tx.Save(model).Error
	}); err != nil {
		return nil, err
	}

	removeArtifact(model.ID, artifact)
	return model, nil
}

// removeArtifact removes the artifact of a committed state, a file left behind is only logged.
func removeArtifact(id uint, path string) {
	if path == "" {
		return
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.WithModel(id).Warnf("remove artifact %s failed: %s", path, err.Error())
	}
}

func (s *modelStorage) IdentifyPaths(ctx context.Context, id uint) (*ModelPaths, error) {
	model, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	workspace := s.workspace(id)
	if info, err := os.Stat(workspace); err != nil || !info.IsDir() {
		return nil, dferrors.NotFoundf("model %d workspace not found", id)
	}

	paths := &ModelPaths{
		Workspace:     workspace,
		FeatureConfig: filepath.Join(workspace, FeatureConfigFileName),
		CostMatrix:    filepath.Join(workspace, CostMatrixFileName),
		Labels:        filepath.Join(workspace, LabelsFileName),
		Artifact:      filepath.Join(workspace, ArtifactFileName),
	}

	if err := WriteFeatureConfig(paths.FeatureConfig, features.Config(model.Features)); err != nil {
		return nil, err
	}

	if err := WriteCostMatrix(paths.CostMatrix, model.CostMatrix); err != nil {
		return nil, err
	}

	labels := make([]*Label, 0, len(model.LabelData))
	for columnID, label := range model.LabelData {
		labels = append(labels, &Label{ColumnID: columnID, Label: label})
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ColumnID < labels[j].ColumnID })

	if err := WriteLabels(paths.Labels, labels); err != nil {
		return nil, err
	}

	return paths, nil
}

func (s *modelStorage) WriteArtifact(ctx context.Context, id uint, artifact *classifier.Artifact) (string, error) {
	path := filepath.Join(s.workspace(id), ArtifactFileName)
	tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())

	if err := writeArtifactFile(tmp, artifact); err != nil {
		os.Remove(tmp)
		return "", err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", err
	}

	s.kmu.Lock(id)
	defer s.kmu.Unlock(id)

	if err := s.db.WithContext(ctx).Model(&models.Model{}).Where("id = ?", id).Update("model_path", path).Error; err != nil {
		return "", err
	}

	if s.loader != nil {
		s.loader.Store(path, artifact)
	}

	return path, nil
}

func (s *modelStorage) ReadArtifact(ctx context.Context, path string) (*classifier.Artifact, error) {
	artifact, err := s.loader.Load(ctx, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dferrors.NotFoundf("artifact %s not found", path)
		}

		return nil, err
	}

	return artifact, nil
}

func writeArtifactFile(path string, artifact *classifier.Artifact) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := artifact.Encode(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// workspace generates model workspace directory based on the given id.
func (s *modelStorage) workspace(id uint) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s-%d", ModelWorkspacePrefix, id))
}
