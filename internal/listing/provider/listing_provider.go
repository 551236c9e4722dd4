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

package provider

import (
	"github.com/clinicdir/directory-data-service/internal/listing/service"
)

// ListingProviderInterface defines the interface for the listing provider.
type ListingProviderInterface interface {
	GetListingService() service.ListingServiceInterface
}

// ListingProvider is the default implementation of the ListingProviderInterface.
type ListingProvider struct{}

// NewListingProvider creates a new instance of ListingProvider.
func NewListingProvider() ListingProviderInterface {

	return &ListingProvider{}
}

// GetListingService returns the listing service instance.
func (lp *ListingProvider) GetListingService() service.ListingServiceInterface {

	return service.GetListingService()
}
