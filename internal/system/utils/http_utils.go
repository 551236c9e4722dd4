/*
 * Copyright (c) 2025-2026, ClinicDir, Inc. (https://clinicdir.com).
 *
 * ClinicDir, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"encoding/json"
	"errors" // Standard Go errors package
	"net/http"

	customerrors "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/log"
)

type errorResponse struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Description   string   `json:"description,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var validationError *customerrors.ValidationError
	if errors.As(err, &validationError) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Code:          validationError.Code,
			Message:       validationError.Message,
			Description:   validationError.Description,
			MissingFields: validationError.MissingFields,
		})
		return
	}

	var conflictError *customerrors.ConflictError
	if errors.As(err, &conflictError) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Code:        conflictError.Code,
			Message:     conflictError.Message,
			Description: conflictError.Description,
		})
		return
	}

	var notFoundError *customerrors.NotFoundError
	if errors.As(err, &notFoundError) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Code:        notFoundError.Code,
			Message:     notFoundError.Message,
			Description: notFoundError.Description,
		})
		return
	}

	var clientError *customerrors.ClientError
	if errors.As(err, &clientError) {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Code:        clientError.Code,
			Message:     clientError.Message,
			Description: clientError.Description,
		})
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error())
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteErrorResponse writes a client error as-is with its status code.
func WriteErrorResponse(w http.ResponseWriter, err *customerrors.ClientError) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)

	_ = json.NewEncoder(w).Encode(err.ErrorMessage)
}

// WriteJSONResponse is a common helper for JSON encoding.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
