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

	"github.com/clinicdir/directory-data-service/internal/match/handler"
)

// DedupService handles routing for ad hoc duplicate checks.
type DedupService struct {
	matchHandler *handler.MatchHandler
}

// NewDedupService creates a new DedupService instance.
func NewDedupService() *DedupService {

	return &DedupService{
		matchHandler: handler.NewMatchHandler(),
	}
}

// Route dispatches duplicate check requests.
func (s *DedupService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/duplicate-checks":
		s.matchHandler.CheckDuplicates(w, r)

	default:
		http.NotFound(w, r)
	}
}
