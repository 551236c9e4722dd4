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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clinicdir/directory-data-service/internal/importer/provider"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/utils"
)

type importRequest struct {
	Source  string                       `json:"source"`
	Records []matchmodel.CandidateRecord `json:"records"`
}

type ImportHandler struct{}

func NewImportHandler() *ImportHandler {

	return &ImportHandler{}
}

// CreateImport accepts a bulk submission and queues it for draft creation.
func (ih *ImportHandler) CreateImport(w http.ResponseWriter, r *http.Request) {

	var request importRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "import batch"),
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	importService := provider.NewImportProvider().GetImportService()
	batch, err := importService.EnqueueBatch(request.Source, request.Records)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusAccepted, batch)
}

// GetImport returns the progress of a batch.
func (ih *ImportHandler) GetImport(w http.ResponseWriter, r *http.Request, batchID string) {

	importService := provider.NewImportProvider().GetImportService()
	batch, err := importService.GetBatch(batchID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, batch)
}
