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
	"net/http"
	"strconv"

	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	"github.com/clinicdir/directory-data-service/internal/listing/provider"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/utils"
)

type ListingHandler struct{}

func NewListingHandler() *ListingHandler {

	return &ListingHandler{}
}

// GetListing handles fetching a single listing by id.
func (lh *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request, idSegment string) {

	listingID, err := strconv.ParseInt(idSegment, 10, 64)
	if err != nil {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Listing id must be an integer.",
		}, http.StatusBadRequest)
		utils.WriteErrorResponse(w, clientError)
		return
	}

	listingService := provider.NewListingProvider().GetListingService()
	listing, err := listingService.GetListing(listingID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, listing)
}

// GetListings handles fetching listings, optionally filtered by state/city.
func (lh *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {

	filter := listingmodel.PoolFilter{
		State: r.URL.Query().Get("state"),
		City:  r.URL.Query().Get("city"),
	}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		if limit, err := strconv.Atoi(rawLimit); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	listingService := provider.NewListingProvider().GetListingService()
	listings, err := listingService.ListCandidatePool(filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, listings)
}
