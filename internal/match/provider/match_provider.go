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
	listingservice "github.com/clinicdir/directory-data-service/internal/listing/service"
	"github.com/clinicdir/directory-data-service/internal/match/service"
	"github.com/clinicdir/directory-data-service/internal/system/config"
)

// MatchProviderInterface defines the interface for the match provider.
type MatchProviderInterface interface {
	GetDuplicateCheckService() service.DuplicateCheckServiceInterface
}

// MatchProvider is the default implementation of the MatchProviderInterface.
type MatchProvider struct{}

// NewMatchProvider creates a new instance of MatchProvider.
func NewMatchProvider() MatchProviderInterface {

	return &MatchProvider{}
}

// GetDuplicateCheckService returns a duplicate check service wired to the
// configured matching policy and the canonical listing pool.
func (mp *MatchProvider) GetDuplicateCheckService() service.DuplicateCheckServiceInterface {

	matching := config.GetDDSRuntime().Config.Matching
	checker := service.NewDuplicateChecker(service.Config{
		MaxPlausibleKm:    matching.MaxPlausibleKm,
		MaxAlternates:     matching.MaxAlternates,
		NameAddressFloor:  matching.NameAddressFloor,
		NameLocationFloor: matching.NameLocationFloor,
	})
	return service.NewDuplicateCheckService(checker, listingservice.GetListingService())
}
