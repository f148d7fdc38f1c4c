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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	logger "d7y.io/matcher/internal/dflog"
	"d7y.io/matcher/matcher/config"
	"d7y.io/matcher/matcher/handlers"
	"d7y.io/matcher/matcher/middlewares"
	"d7y.io/matcher/matcher/service"
)

const (
	PrometheusSubsystemName = "matcher_rest"
)

func Init(cfg *config.Config, service service.Service) *gin.Engine {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.REST.MaxUploadBytes
	h := handlers.New(service)

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// URL removes query string.
	// Prometheus metrics need to reduce label,
	// refer to https://prometheus.io/docs/practices/instrumentation/#do-not-overuse-labels.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.FullPath()
	}
	p.Use(r)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	apiv1 := r.Group("/api/v1")

	// DataSet
	ds := apiv1.Group("/datasets")
	ds.POST("", middlewares.LimitBody(cfg.Server.REST.MaxUploadBytes), h.CreateDataSet)
	ds.DELETE(":id", h.DestroyDataSet)
	ds.PATCH(":id", h.UpdateDataSet)
	ds.GET(":id", h.GetDataSet)
	ds.GET("", h.GetDataSets)

	// Model
	m := apiv1.Group("/models")
	m.POST("", h.CreateModel)
	m.DELETE(":id", h.DestroyModel)
	m.PATCH(":id", h.UpdateModel)
	m.GET(":id", h.GetModel)
	m.GET("", h.GetModels)
	m.POST(":id/train", h.TrainModel)
	m.POST(":id/predict/:dataset_id", h.PredictModel)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	return r
}
