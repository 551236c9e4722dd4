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

package services

import (
	"net/http"
	"strings"

	"github.com/clinicdir/directory-data-service/internal/draft/handler"
)

// DraftService handles routing for the draft review workflow.
type DraftService struct {
	draftHandler *handler.DraftHandler
}

// NewDraftService creates a new DraftService instance.
func NewDraftService() *DraftService {

	return &DraftService{
		draftHandler: handler.NewDraftHandler(),
	}
}

// Route dispatches draft lifecycle requests.
func (s *DraftService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	switch {
	case method == http.MethodPost && path == "/drafts":
		s.draftHandler.CreateDraft(w, r)

	case method == http.MethodGet && len(segments) == 2 && segments[0] == "drafts":
		s.draftHandler.GetDraft(w, r, segments[1])

	case method == http.MethodPatch && len(segments) == 2 && segments[0] == "drafts":
		s.draftHandler.UpdateDraft(w, r, segments[1])

	case method == http.MethodPost && len(segments) == 3 && segments[0] == "drafts" && segments[2] == "approve":
		s.draftHandler.ApproveDraft(w, r, segments[1])

	case method == http.MethodPost && len(segments) == 3 && segments[0] == "drafts" && segments[2] == "reject":
		s.draftHandler.RejectDraft(w, r, segments[1])

	case method == http.MethodPost && len(segments) == 3 && segments[0] == "drafts" && segments[2] == "merge":
		s.draftHandler.MergeDraft(w, r, segments[1])

	default:
		http.NotFound(w, r)
	}
}
