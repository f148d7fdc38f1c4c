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

package middlewares

import (
	"errors"
	"net/http"

	"github.com/VividCortex/mysqlerr"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"d7y.io/matcher/internal/dferrors"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"errors,omitempty"`
	Code    int    `json:"code,omitempty"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err.Type == gin.ErrorTypeBind {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: http.StatusText(http.StatusUnprocessableEntity),
				Error:   err.Error(),
			})
			return
		}

		// Matcher error handler
		var dferr *dferrors.DfError
		if errors.As(err.Err, &dferr) {
			var status int
			switch dferr.Kind() {
			case dferrors.KindNotFound:
				status = http.StatusNotFound
			case dferrors.KindBadRequest:
				status = http.StatusBadRequest
			default:
				status = http.StatusInternalServerError
			}

			c.JSON(status, ErrorResponse{
				Message: dferr.Message,
				Code:    int(dferr.Code),
			})
			return
		}

		// Mysql error handler
		var merr *mysql.MySQLError
		if errors.As(err.Err, &merr) && merr.Number == mysqlerr.ER_DUP_ENTRY {
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: http.StatusText(http.StatusConflict),
			})
			return
		}

		// GORM ErrRecordNotFound handler
		if errors.Is(err.Err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: http.StatusText(http.StatusNotFound),
			})
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
