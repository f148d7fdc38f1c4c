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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	_ "d7y.io/matcher/matcher/models"     // nolint
	_ "d7y.io/matcher/matcher/prediction" // nolint
	"d7y.io/matcher/matcher/types"
)

// @Summary Create Model
// @Description Create by json config
// @Tags Model
// @Accept json
// @Produce json
// @Param Model body types.CreateModelRequest true "Model"
// @Success 200 {object} models.Model
// @Failure 400
// @Failure 500
// @Router /models [post]
func (h *Handlers) CreateModel(ctx *gin.Context) {
	var json types.CreateModelRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	model, err := h.service.CreateModel(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, model)
}

// @Summary Destroy Model
// @Description Destroy by id
// @Tags Model
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /models/{id} [delete]
func (h *Handlers) DestroyModel(ctx *gin.Context) {
	var params types.ModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyModel(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update Model
// @Description Update by json config, changing training inputs resets the model
// @Tags Model
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Model body types.UpdateModelRequest true "Model"
// @Success 200 {object} models.Model
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /models/{id} [patch]
func (h *Handlers) UpdateModel(ctx *gin.Context) {
	var params types.ModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateModelRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	model, err := h.service.UpdateModel(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, model)
}

// @Summary Get Model
// @Description Get Model by id
// @Tags Model
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Model
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /models/{id} [get]
func (h *Handlers) GetModel(ctx *gin.Context) {
	var params types.ModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	model, err := h.service.GetModel(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, model)
}

// @Summary Get Models
// @Description Get Models
// @Tags Model
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 1000" default(10) minimum(2) maximum(1000)
// @Success 200 {object} []models.Model
// @Failure 400
// @Failure 500
// @Router /models [get]
func (h *Handlers) GetModels(ctx *gin.Context) {
	var query types.GetModelsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	values, count, err := h.service.GetModels(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, values)
}

// @Summary Train Model
// @Description Start training unless the model is consistent or busy, returns the model state
// @Tags Model
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 202 {object} models.Model
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /models/{id}/train [post]
func (h *Handlers) TrainModel(ctx *gin.Context) {
	var params types.ModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	model, err := h.service.TrainModel(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusAccepted, model)
}

// @Summary Predict Model
// @Description Predict column classes of the dataset with a trained model
// @Tags Model
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param dataset_id path string true "dataset_id"
// @Success 200 {object} prediction.Result
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /models/{id}/predict/{dataset_id} [post]
func (h *Handlers) PredictModel(ctx *gin.Context) {
	var params types.PredictModelParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	result, err := h.service.PredictModel(ctx.Request.Context(), params.ID, params.DataSetID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}
