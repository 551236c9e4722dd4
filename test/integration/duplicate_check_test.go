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

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	listingservice "github.com/clinicdir/directory-data-service/internal/listing/service"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	matchservice "github.com/clinicdir/directory-data-service/internal/match/service"
)

// Test_DuplicateCheckAgainstStore runs the full duplicate check loop against
// listings persisted in postgres rather than an in-memory pool.
func Test_DuplicateCheckAgainstStore(t *testing.T) {

	listings := listingservice.GetListingService()
	lakeMaryLat, lakeMaryLon := 28.7589, -81.3178

	existingID, err := listings.CreateCanonical(listingmodel.Listing{
		Name:      "Radiance Aesthetics",
		Address:   "500 Town Center Blvd",
		City:      "Lake Mary",
		State:     "FL",
		Phone:     "555-777-8888",
		Website:   "https://radianceaesthetics.com",
		PlaceID:   "ChIJradiance1",
		Latitude:  &lakeMaryLat,
		Longitude: &lakeMaryLon,
	})
	require.NoError(t, err)

	checker := matchservice.NewDuplicateChecker(matchservice.DefaultConfig())
	checkService := matchservice.NewDuplicateCheckService(checker, listings)

	t.Run("IdentifierMatch", func(t *testing.T) {
		summary, err := checkService.CheckCandidate(matchmodel.CandidateRecord{
			Name:    "Radiance Aesthetics LLC",
			PlaceID: "ChIJradiance1",
		})
		require.NoError(t, err)
		require.True(t, summary.HasDuplicates)
		assert.Equal(t, existingID, summary.BestMatch.ListingID)
		assert.Equal(t, matchmodel.StrategyExternalIDExact, summary.BestMatch.Strategy)
		assert.Equal(t, matchmodel.BandHigh, summary.ConfidenceBand)
	})

	t.Run("FuzzyMatchOnStoredListing", func(t *testing.T) {
		summary, err := checkService.CheckCandidate(matchmodel.CandidateRecord{
			Name:    "Radiance Aesthetics Med Spa",
			Address: "500 Town Center Boulevard",
		})
		require.NoError(t, err)
		require.True(t, summary.HasDuplicates)
		assert.Equal(t, existingID, summary.BestMatch.ListingID)
	})

	t.Run("VetoAcrossStates", func(t *testing.T) {
		chicagoLat, chicagoLon := 41.8781, -87.6298
		summary, err := checkService.CheckCandidate(matchmodel.CandidateRecord{
			Name:      "Radiance Aesthetics",
			Address:   "500 Town Center Blvd",
			Latitude:  &chicagoLat,
			Longitude: &chicagoLon,
		})
		require.NoError(t, err)
		assert.False(t, summary.HasDuplicates)
	})
}
