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
	"github.com/clinicdir/directory-data-service/internal/draft/service"
	"github.com/clinicdir/directory-data-service/internal/draft/store"
	geocode "github.com/clinicdir/directory-data-service/internal/geocode/client"
	listingservice "github.com/clinicdir/directory-data-service/internal/listing/service"
	matchprovider "github.com/clinicdir/directory-data-service/internal/match/provider"
	mergeservice "github.com/clinicdir/directory-data-service/internal/merge/service"
	"github.com/clinicdir/directory-data-service/internal/system/config"
	"github.com/clinicdir/directory-data-service/internal/system/constants"
	"github.com/clinicdir/directory-data-service/internal/system/database/document"
)

// DraftProviderInterface defines the interface for the draft service provider.
type DraftProviderInterface interface {
	GetDraftService() service.DraftServiceInterface
}

// DraftProvider wires the draft lifecycle with its stores and engines.
type DraftProvider struct{}

// NewDraftProvider creates a new instance of DraftProvider.
func NewDraftProvider() DraftProviderInterface {

	return &DraftProvider{}
}

// GetDraftService returns a draft service bound to the shared document
// store, the canonical listing service, the duplicate check engine, the
// merge resolver, and the configured geocode client.
func (dp *DraftProvider) GetDraftService() service.DraftServiceInterface {
	repo := store.NewDraftRepository(document.GetInstance().Database, constants.DraftCollection)
	listings := listingservice.GetListingService()
	dupCheck := matchprovider.NewMatchProvider().GetDuplicateCheckService()
	resolver := mergeservice.GetMergeResolver()
	geo := geocode.NewGeocodeClient(config.GetDDSRuntime().Config.Geocode)

	return service.NewDraftService(repo, listings, dupCheck, resolver, geo)
}
