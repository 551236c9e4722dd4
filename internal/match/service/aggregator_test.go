package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	"github.com/clinicdir/directory-data-service/internal/match/model"
)

type stubPool struct {
	listings []listingmodel.Listing
	err      error
}

func (p *stubPool) ListCandidatePool(filter listingmodel.PoolFilter) ([]listingmodel.Listing, error) {
	return p.listings, p.err
}

func TestCheckDuplicates(t *testing.T) {

	checker := NewDuplicateChecker(DefaultConfig())

	t.Run("EmptyPool", func(t *testing.T) {
		summary := checker.CheckDuplicates(model.CandidateRecord{Name: "Blooming Beauty"}, nil)
		assert.False(t, summary.HasDuplicates)
		assert.Nil(t, summary.BestMatch)
	})

	t.Run("NoStrategyFires", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, Name: "Harborview Pediatrics", Address: "900 Dock Rd", City: "Tampa", State: "FL"},
		}
		candidate := model.CandidateRecord{Name: "Zenith Orthopedics", Address: "1 First Ave", City: "Lake Mary", State: "FL"}
		summary := checker.CheckDuplicates(candidate, pool)
		assert.False(t, summary.HasDuplicates)
	})

	t.Run("BestMatchAndBand", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, Name: "Blooming Beauty", Address: "742 Evergreen Terrace"},
			{ListingID: 2, Name: "Coastal Dental", Address: "11 Shore Dr", Phone: "555-123-4567"},
		}
		candidate := model.CandidateRecord{
			Name:    "Blooming Beauty Med Spa",
			Address: "742 Evergreen Ter",
			Phone:   "(555) 123-4567",
		}
		summary := checker.CheckDuplicates(candidate, pool)
		require.True(t, summary.HasDuplicates)
		require.NotNil(t, summary.BestMatch)
		assert.Equal(t, int64(1), summary.BestMatch.ListingID)
		assert.Equal(t, model.BandHigh, summary.ConfidenceBand)
		// The phone-only listing survives as an alternate.
		require.Len(t, summary.Alternates, 1)
		assert.Equal(t, int64(2), summary.Alternates[0].ListingID)
		assert.Equal(t, model.StrategyPhoneNormalized, summary.Alternates[0].Strategy)
	})

	t.Run("OneResultPerListing", func(t *testing.T) {
		// Name, address, phone, and website all point at the same listing;
		// only the strongest strategy survives for it.
		pool := []listingmodel.Listing{
			{
				ListingID: 5,
				Name:      "Blooming Beauty",
				Address:   "742 Evergreen Ter",
				Phone:     "555-123-4567",
				Website:   "https://bloomingbeauty.com",
			},
		}
		candidate := model.CandidateRecord{
			Name:    "Blooming Beauty",
			Address: "742 Evergreen Ter",
			Phone:   "(555) 123-4567",
			Website: "http://www.bloomingbeauty.com",
		}
		summary := checker.CheckDuplicates(candidate, pool)
		require.True(t, summary.HasDuplicates)
		assert.Equal(t, model.StrategyFuzzyNameAddress, summary.BestMatch.Strategy)
		assert.Empty(t, summary.Alternates)
	})

	t.Run("Deterministic", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 3, Phone: "555-123-4567"},
			{ListingID: 1, Phone: "555-123-4567"},
			{ListingID: 2, Phone: "555-123-4567"},
		}
		candidate := model.CandidateRecord{Phone: "(555) 123-4567"}

		first := checker.CheckDuplicates(candidate, pool)
		second := checker.CheckDuplicates(candidate, pool)
		assert.Equal(t, first, second)
	})

	t.Run("ScoreTieBreaksOnLowerListingID", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 9, Phone: "555-123-4567"},
			{ListingID: 4, Phone: "555-123-4567"},
		}
		candidate := model.CandidateRecord{Phone: "(555) 123-4567"}
		summary := checker.CheckDuplicates(candidate, pool)
		require.True(t, summary.HasDuplicates)
		assert.Equal(t, int64(4), summary.BestMatch.ListingID)
		require.Len(t, summary.Alternates, 1)
		assert.Equal(t, int64(9), summary.Alternates[0].ListingID)
	})

	t.Run("ExactStrategyWinsScoreTies", func(t *testing.T) {
		results := []model.MatchResult{
			{ListingID: 1, Strategy: model.StrategyFuzzyNameAddress, RawScore: 1.0},
			{ListingID: 2, Strategy: model.StrategyExternalIDExact, RawScore: 1.0},
		}
		sortResults(results)
		assert.Equal(t, model.StrategyExternalIDExact, results[0].Strategy)
	})

	t.Run("AlternatesCapped", func(t *testing.T) {
		var pool []listingmodel.Listing
		for id := int64(1); id <= 8; id++ {
			pool = append(pool, listingmodel.Listing{ListingID: id, Phone: "555-123-4567"})
		}
		candidate := model.CandidateRecord{Phone: "(555) 123-4567"}
		summary := checker.CheckDuplicates(candidate, pool)
		require.True(t, summary.HasDuplicates)
		assert.Len(t, summary.Alternates, DefaultConfig().MaxAlternates)
	})

	t.Run("RawScoresWithinUnitInterval", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, Name: "Blooming Beauty", Address: "742 Evergreen Ter", City: "Lake Mary", State: "FL", Phone: "555-123-4567", Website: "https://example.com", PlaceID: "ChIJx"},
		}
		candidate := model.CandidateRecord{
			Name: "Blooming Beauty Med Spa", Address: "742 Evergreen Terrace",
			City: "Lake Mary", State: "FL", Phone: "(555) 123-4567",
			Website: "http://www.example.com", PlaceID: "ChIJx",
		}
		summary := checker.CheckDuplicates(candidate, pool)
		for _, result := range summary.Results() {
			assert.GreaterOrEqual(t, result.RawScore, 0.0)
			assert.LessOrEqual(t, result.RawScore, 1.0)
		}
	})
}

func TestGeoVeto(t *testing.T) {

	checker := NewDuplicateChecker(DefaultConfig())

	lakeMaryLat, lakeMaryLon := 28.7589, -81.3178
	chicagoLat, chicagoLon := 41.8781, -87.6298

	t.Run("ImplausibleDistanceDiscardsFuzzyMatch", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{
				ListingID: 1,
				Name:      "Blooming Beauty",
				Address:   "100 Lakeshore Dr",
				Latitude:  floatPtr(chicagoLat),
				Longitude: floatPtr(chicagoLon),
			},
		}
		candidate := model.CandidateRecord{
			Name:      "Blooming Beauty",
			Address:   "100 Lakeshore Dr",
			Latitude:  floatPtr(lakeMaryLat),
			Longitude: floatPtr(lakeMaryLon),
		}
		summary := checker.CheckDuplicates(candidate, pool)
		assert.False(t, summary.HasDuplicates)
	})

	t.Run("VetoedMatchIsNotAnAlternateEither", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, Name: "Blooming Beauty", Address: "100 Lakeshore Dr",
				Latitude: floatPtr(chicagoLat), Longitude: floatPtr(chicagoLon)},
			{ListingID: 2, Phone: "555-123-4567"},
		}
		candidate := model.CandidateRecord{
			Name: "Blooming Beauty", Address: "100 Lakeshore Dr", Phone: "(555) 123-4567",
			Latitude: floatPtr(lakeMaryLat), Longitude: floatPtr(lakeMaryLon),
		}
		summary := checker.CheckDuplicates(candidate, pool)
		require.True(t, summary.HasDuplicates)
		assert.Equal(t, int64(2), summary.BestMatch.ListingID)
		assert.Empty(t, summary.Alternates)
	})

	t.Run("MissingCoordinatesFailOpen", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, Name: "Blooming Beauty", Address: "100 Lakeshore Dr",
				Latitude: floatPtr(chicagoLat), Longitude: floatPtr(chicagoLon)},
		}
		candidate := model.CandidateRecord{Name: "Blooming Beauty", Address: "100 Lakeshore Dr"}
		summary := checker.CheckDuplicates(candidate, pool)
		assert.True(t, summary.HasDuplicates)
	})

	t.Run("IdentifierMatchSurvivesVeto", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, PlaceID: "ChIJabc123",
				Latitude: floatPtr(chicagoLat), Longitude: floatPtr(chicagoLon)},
		}
		candidate := model.CandidateRecord{
			PlaceID:  "ChIJabc123",
			Latitude: floatPtr(lakeMaryLat), Longitude: floatPtr(lakeMaryLon),
		}
		summary := checker.CheckDuplicates(candidate, pool)
		require.True(t, summary.HasDuplicates)
		assert.Equal(t, model.StrategyExternalIDExact, summary.BestMatch.Strategy)
		assert.Equal(t, model.BandHigh, summary.ConfidenceBand)
	})

	t.Run("NearbyCoordinatesPass", func(t *testing.T) {
		pool := []listingmodel.Listing{
			{ListingID: 1, Name: "Blooming Beauty", Address: "100 Lakeshore Dr",
				Latitude: floatPtr(28.7601), Longitude: floatPtr(-81.3190)},
		}
		candidate := model.CandidateRecord{
			Name: "Blooming Beauty", Address: "100 Lakeshore Dr",
			Latitude: floatPtr(lakeMaryLat), Longitude: floatPtr(lakeMaryLon),
		}
		summary := checker.CheckDuplicates(candidate, pool)
		assert.True(t, summary.HasDuplicates)
	})
}

func TestDuplicateCheckService(t *testing.T) {

	checker := NewDuplicateChecker(DefaultConfig())

	t.Run("WrapsPoolFailure", func(t *testing.T) {
		service := NewDuplicateCheckService(checker, &stubPool{err: errors.New("connection refused")})
		_, err := service.CheckCandidate(model.CandidateRecord{Name: "Blooming Beauty"})
		assert.Error(t, err)
	})

	t.Run("ScoresAgainstPool", func(t *testing.T) {
		service := NewDuplicateCheckService(checker, &stubPool{listings: []listingmodel.Listing{
			{ListingID: 1, Phone: "555-123-4567"},
		}})
		summary, err := service.CheckCandidate(model.CandidateRecord{Phone: "(555) 123-4567"})
		require.NoError(t, err)
		assert.True(t, summary.HasDuplicates)
		assert.Equal(t, model.BandMedium, summary.ConfidenceBand)
	})
}
