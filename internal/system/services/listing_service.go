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

	"github.com/clinicdir/directory-data-service/internal/listing/handler"
)

// ListingService handles routing for canonical listing reads.
type ListingService struct {
	listingHandler *handler.ListingHandler
}

// NewListingService creates a new ListingService instance.
func NewListingService() *ListingService {

	return &ListingService{
		listingHandler: handler.NewListingHandler(),
	}
}

// Route dispatches listing requests.
func (s *ListingService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	switch {
	case method == http.MethodGet && path == "/listings":
		s.listingHandler.GetListings(w, r)

	case method == http.MethodGet && len(segments) == 2 && segments[0] == "listings":
		s.listingHandler.GetListing(w, r, segments[1])

	default:
		http.NotFound(w, r)
	}
}
