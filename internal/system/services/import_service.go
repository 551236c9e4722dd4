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

	"github.com/clinicdir/directory-data-service/internal/importer/handler"
)

// ImportService handles routing for bulk imports.
type ImportService struct {
	importHandler *handler.ImportHandler
}

// NewImportService creates a new ImportService instance.
func NewImportService() *ImportService {

	return &ImportService{
		importHandler: handler.NewImportHandler(),
	}
}

// Route dispatches bulk import requests.
func (s *ImportService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	switch {
	case method == http.MethodPost && path == "/imports":
		s.importHandler.CreateImport(w, r)

	case method == http.MethodGet && len(segments) == 2 && segments[0] == "imports":
		s.importHandler.GetImport(w, r, segments[1])

	default:
		http.NotFound(w, r)
	}
}
