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

	"github.com/clinicdir/directory-data-service/internal/draft/provider"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/system/constants"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/utils"
)

type createDraftRequest struct {
	Source  string                     `json:"source"`
	Payload matchmodel.CandidateRecord `json:"payload"`
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

type mergeRequest struct {
	ExistingID int64  `json:"existing_id"`
	Notes      string `json:"notes"`
}

type DraftHandler struct{}

func NewDraftHandler() *DraftHandler {

	return &DraftHandler{}
}

// CreateDraft handles a new partner or import submission.
func (dh *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {

	var request createDraftRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		writeDecodeError(w, err, "draft submission")
		return
	}
	if request.Source == "" {
		request.Source = constants.SourcePartnerSubmission
	}

	draftService := provider.NewDraftProvider().GetDraftService()
	draft, err := draftService.CreateDraft(request.Payload, request.Source)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, draft)
}

// GetDraft returns the draft with the given id.
func (dh *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request, draftID string) {

	draftService := provider.NewDraftProvider().GetDraftService()
	draft, err := draftService.GetDraft(draftID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, draft)
}

// UpdateDraft replaces the payload of a non-terminal draft and recomputes
// its duplicate match set.
func (dh *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request, draftID string) {

	var payload matchmodel.CandidateRecord
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		writeDecodeError(w, err, "draft payload")
		return
	}

	draftService := provider.NewDraftProvider().GetDraftService()
	draft, err := draftService.UpdateDraftPayload(draftID, payload)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, draft)
}

// ApproveDraft promotes a pending draft into a new canonical listing.
func (dh *DraftHandler) ApproveDraft(w http.ResponseWriter, r *http.Request, draftID string) {

	draftService := provider.NewDraftProvider().GetDraftService()
	draft, err := draftService.ApproveDraft(draftID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, draft)
}

// RejectDraft terminally rejects a pending draft.
func (dh *DraftHandler) RejectDraft(w http.ResponseWriter, r *http.Request, draftID string) {

	var request reviewRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&request); err != nil {
			writeDecodeError(w, err, "review notes")
			return
		}
	}

	draftService := provider.NewDraftProvider().GetDraftService()
	draft, err := draftService.RejectDraft(draftID, request.Notes)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, draft)
}

// MergeDraft merges a pending draft into the reviewer's chosen listing.
func (dh *DraftHandler) MergeDraft(w http.ResponseWriter, r *http.Request, draftID string) {

	var request mergeRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		writeDecodeError(w, err, "merge request")
		return
	}

	draftService := provider.NewDraftProvider().GetDraftService()
	draft, err := draftService.MergeDraft(draftID, request.ExistingID, request.Notes)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, draft)
}

func writeDecodeError(w http.ResponseWriter, err error, target string) {

	clientError := errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: utils.HandleDecodeError(err, target),
	}, http.StatusBadRequest)
	utils.WriteErrorResponse(w, clientError)
}
