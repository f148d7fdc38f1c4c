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
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	_ "d7y.io/matcher/matcher/models" // nolint
	"d7y.io/matcher/matcher/types"
)

// @Summary Create DataSet
// @Description Upload a csv file as dataset
// @Tags DataSet
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "csv file"
// @Param description formData string false "description"
// @Param type_map formData string false "json object of column name to logical type"
// @Success 200 {object} models.Dataset
// @Failure 400
// @Failure 500
// @Router /datasets [post]
func (h *Handlers) CreateDataSet(ctx *gin.Context) {
	var form types.CreateDataSetRequest
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var typeMap map[string]string
	if form.TypeMap != "" {
		if err := json.Unmarshal([]byte(form.TypeMap), &typeMap); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
			return
		}
	}

	f, err := form.File.Open()
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	dataset, err := h.service.CreateDataSet(ctx.Request.Context(), form.File.Filename, content, form.Description, typeMap)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, dataset)
}

// @Summary Destroy DataSet
// @Description Destroy by id, labels of its columns are removed from models
// @Tags DataSet
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /datasets/{id} [delete]
func (h *Handlers) DestroyDataSet(ctx *gin.Context) {
	var params types.DataSetParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyDataSet(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update DataSet
// @Description Update by json config
// @Tags DataSet
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param DataSet body types.UpdateDataSetRequest true "DataSet"
// @Success 200 {object} models.Dataset
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /datasets/{id} [patch]
func (h *Handlers) UpdateDataSet(ctx *gin.Context) {
	var params types.DataSetParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateDataSetRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	dataset, err := h.service.UpdateDataSet(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, dataset)
}

// @Summary Get DataSet
// @Description Get DataSet by id
// @Tags DataSet
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Dataset
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /datasets/{id} [get]
func (h *Handlers) GetDataSet(ctx *gin.Context) {
	var params types.DataSetParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	dataset, err := h.service.GetDataSet(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, dataset)
}

// @Summary Get DataSets
// @Description Get DataSets
// @Tags DataSet
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 1000" default(10) minimum(2) maximum(1000)
// @Success 200 {object} []models.Dataset
// @Failure 400
// @Failure 500
// @Router /datasets [get]
func (h *Handlers) GetDataSets(ctx *gin.Context) {
	var query types.GetDataSetsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	datasets, count, err := h.service.GetDataSets(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, datasets)
}
