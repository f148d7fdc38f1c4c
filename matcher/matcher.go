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
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/classifier"
	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/database"
	"d7y.io/matcher/matcher/lifecycle"
	"d7y.io/matcher/matcher/metrics"
	"d7y.io/matcher/matcher/prediction"
	"d7y.io/matcher/matcher/router"
	"d7y.io/matcher/matcher/service"
	"d7y.io/matcher/matcher/storage"
	"d7y.io/matcher/matcher/training"
	"d7y.io/matcher/pkg/dfpath"
	"d7y.io/matcher/pkg/gc"
	"d7y.io/matcher/pkg/types"
)

const (
	// gracefulStopTimeout specifies a time limit for
	// running trainings and requests to finish on stop.
	gracefulStopTimeout = 10 * time.Second

	lockFileName = "matcher.lock"
)

type Server struct {
	// Server configuration.
	config *config.Config

	// Work home lock.
	lock *flock.Flock

	// Database.
	db *database.Database

	// Model lifecycle.
	lifecycle lifecycle.Lifecycle

	// GC server.
	gc gc.GC

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server
}

func New(ctx context.Context, cfg *config.Config, d dfpath.Dfpath) (*Server, error) {
	s := &Server{config: cfg}

	// Only one matcher owns the data directory.
	s.lock = flock.New(filepath.Join(d.WorkHome(), lockFileName))
	locked, err := s.lock.TryLock()
	if err != nil {
		return nil, err
	}

	if !locked {
		return nil, fmt.Errorf("work home %s is locked by another %s", d.WorkHome(), types.MatcherName)
	}

	// Initialize database.
	db, err := database.New(cfg, d.DataDir())
	if err != nil {
		s.lock.Unlock()
		return nil, err
	}
	s.db = db

	// Initialize storages.
	runtime := classifier.NewRuntime(cfg.Training.Concurrency)
	datasets := storage.NewDatasetStorage(db.DB, d.DataSetDir())
	modelStorage := storage.NewModelStorage(db.DB, d.ModelDir(), classifier.NewLoader(runtime, cfg.Training.ArtifactCacheTTL))

	// Initialize training and prediction.
	var reportDir string
	if cfg.Prediction.EnableReport {
		reportDir = cfg.Prediction.ReportDir
		if reportDir == "" {
			reportDir = d.ReportDir()
		}
	}

	t := training.New(cfg, datasets, modelStorage, classifier.NewFitter(runtime))
	p := prediction.New(datasets, modelStorage, runtime, reportDir)

	// Initialize lifecycle and fail the trainings lost by the last exit.
	s.lifecycle = lifecycle.New(lifecycle.NewChecker(datasets, modelStorage), modelStorage, t, p)
	if err := s.lifecycle.Recover(ctx); err != nil {
		s.close()
		return nil, err
	}

	// Initialize garbage collection.
	s.gc = gc.New(gc.WithLogger(logger.CoreLogger))
	if err := s.gc.Add(gc.Task{
		ID:       storage.ArtifactGCID,
		Interval: config.DefaultGCInterval,
		Timeout:  config.DefaultGCTimeout,
		Runner:   storage.NewArtifactGC(d.ModelDir(), config.DefaultGCInterval),
	}); err != nil {
		s.close()
		return nil, err
	}

	if reportDir != "" {
		if err := s.gc.Add(gc.Task{
			ID:       prediction.ReportGCID,
			Interval: config.DefaultGCInterval,
			Timeout:  config.DefaultGCTimeout,
			Runner:   prediction.NewReportGC(reportDir, cfg.Prediction.ReportTTL),
		}); err != nil {
			s.close()
			return nil, err
		}
	}

	// Initialize REST server.
	s.restServer = &http.Server{
		Addr:    cfg.Server.REST.Addr,
		Handler: router.Init(cfg, service.New(cfg, datasets, modelStorage, s.lifecycle)),
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	// Started GC server.
	s.gc.Start(context.Background())
	logger.Info("started gc server")

	// Started metrics server.
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if err == http.ErrServerClosed {
					return
				}

				logger.Fatalf("metrics server closed unexpect: %s", err.Error())
			}
		}()
	}

	// Started REST server.
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("rest server closed unexpect: %s", err.Error())
		return err
	}

	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
	defer cancel()

	// Stop REST server.
	if err := s.restServer.Shutdown(ctx); err != nil {
		logger.Errorf("rest server failed to stop: %s", err.Error())
	} else {
		logger.Info("rest server closed under request")
	}

	// Wait running trainings, the unfinished ones are failed on next start.
	stopped := make(chan struct{})
	go func() {
		s.lifecycle.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Info("trainings finished")
	case <-ctx.Done():
		logger.Warn("trainings are interrupted")
	}

	// Stop GC server.
	s.gc.Stop()

	// Stop metrics server.
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		} else {
			logger.Info("metrics server closed under request")
		}
	}

	s.close()
}

// close releases the database and the work home lock.
func (s *Server) close() {
	if err := s.db.Close(); err != nil {
		logger.Errorf("close database failed: %s", err.Error())
	}

	if err := s.lock.Unlock(); err != nil {
		logger.Errorf("unlock work home failed: %s", err.Error())
	}
}
