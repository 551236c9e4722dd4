package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/merge/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func decisionFor(decisions []model.MergeDecision, field string) *model.MergeDecision {
	for i := range decisions {
		if decisions[i].Field == field {
			return &decisions[i]
		}
	}
	return nil
}

func TestResolveScalars(t *testing.T) {

	resolver := GetMergeResolver()

	t.Run("ExistingValueWins", func(t *testing.T) {
		existing := listingmodel.Listing{ListingID: 1, Name: "Blooming Beauty", Phone: "555-123-4567"}
		payload := matchmodel.CandidateRecord{Name: "Blooming Beauty Med Spa", Phone: "555-999-0000"}

		merged, decisions := resolver.Resolve(payload, existing)
		assert.Equal(t, "Blooming Beauty", merged.Name)
		assert.Equal(t, "555-123-4567", merged.Phone)

		kept := decisionFor(decisions, "name")
		require.NotNil(t, kept)
		assert.Equal(t, model.ActionKeptExisting, kept.Action)
	})

	t.Run("SubmissionFillsGaps", func(t *testing.T) {
		existing := listingmodel.Listing{ListingID: 1, Name: "Blooming Beauty"}
		payload := matchmodel.CandidateRecord{
			Name:    "Blooming Beauty",
			Website: "https://bloomingbeauty.com",
			Email:   "hello@bloomingbeauty.com",
		}

		merged, decisions := resolver.Resolve(payload, existing)
		assert.Equal(t, "https://bloomingbeauty.com", merged.Website)
		assert.Equal(t, "hello@bloomingbeauty.com", merged.Email)

		filled := decisionFor(decisions, "website")
		require.NotNil(t, filled)
		assert.Equal(t, model.ActionFilledFromSubmission, filled.Action)
	})

	t.Run("IdenticalValueRecordsNothing", func(t *testing.T) {
		existing := listingmodel.Listing{ListingID: 1, Name: "Blooming Beauty"}
		payload := matchmodel.CandidateRecord{Name: "Blooming Beauty"}

		_, decisions := resolver.Resolve(payload, existing)
		assert.Nil(t, decisionFor(decisions, "name"))
	})

	t.Run("CoordinatesFilledOnlyWhenBothMissing", func(t *testing.T) {
		existing := listingmodel.Listing{ListingID: 1}
		payload := matchmodel.CandidateRecord{Latitude: floatPtr(28.7589), Longitude: floatPtr(-81.3178)}

		merged, decisions := resolver.Resolve(payload, existing)
		require.NotNil(t, merged.Latitude)
		assert.Equal(t, 28.7589, *merged.Latitude)
		assert.NotNil(t, decisionFor(decisions, "coordinates"))

		// Existing coordinates never move.
		anchored := listingmodel.Listing{ListingID: 2, Latitude: floatPtr(40.0), Longitude: floatPtr(-75.0)}
		merged2, decisions2 := resolver.Resolve(payload, anchored)
		assert.Equal(t, 40.0, *merged2.Latitude)
		assert.Nil(t, decisionFor(decisions2, "coordinates"))
	})
}

func TestResolveChildren(t *testing.T) {

	resolver := GetMergeResolver()

	t.Run("UnionByNormalizedName", func(t *testing.T) {
		existing := listingmodel.Listing{
			ListingID: 1,
			Providers: []listingmodel.Provider{{ProviderID: 11, Name: "Dr. Emily Chen", Title: "Dermatologist"}},
		}
		payload := matchmodel.CandidateRecord{
			Providers: []matchmodel.ProviderInput{
				{Name: "Emily Chen, MD"},
				{Name: "Marcus Webb", Title: "Nurse Injector"},
			},
		}

		merged, decisions := resolver.Resolve(payload, existing)
		require.Len(t, merged.Providers, 2)
		assert.Equal(t, "Dr. Emily Chen", merged.Providers[0].Name)
		assert.Equal(t, "Marcus Webb", merged.Providers[1].Name)

		added := decisionFor(decisions, "providers.marcus webb")
		require.NotNil(t, added)
		assert.Equal(t, model.ActionChildAdded, added.Action)
	})

	t.Run("GapFillsChildFields", func(t *testing.T) {
		existing := listingmodel.Listing{
			ListingID:  1,
			Procedures: []listingmodel.Procedure{{ProcedureID: 21, Name: "Botox"}},
		}
		payload := matchmodel.CandidateRecord{
			Procedures: []matchmodel.ProcedureInput{{Name: "Botox", Category: "Injectables"}},
		}

		merged, decisions := resolver.Resolve(payload, existing)
		require.Len(t, merged.Procedures, 1)
		assert.Equal(t, "Injectables", merged.Procedures[0].Category)

		updated := decisionFor(decisions, "procedures.botox")
		require.NotNil(t, updated)
		assert.Equal(t, model.ActionChildUpdated, updated.Action)
	})

	t.Run("PopulatedChildFieldNotOverwritten", func(t *testing.T) {
		existing := listingmodel.Listing{
			ListingID:  1,
			Procedures: []listingmodel.Procedure{{ProcedureID: 21, Name: "Botox", Category: "Injectables"}},
		}
		payload := matchmodel.CandidateRecord{
			Procedures: []matchmodel.ProcedureInput{{Name: "Botox", Category: "Neurotoxins"}},
		}

		merged, decisions := resolver.Resolve(payload, existing)
		assert.Equal(t, "Injectables", merged.Procedures[0].Category)
		assert.Nil(t, decisionFor(decisions, "procedures.botox"))
	})

	t.Run("NamelessChildSkipped", func(t *testing.T) {
		existing := listingmodel.Listing{ListingID: 1}
		payload := matchmodel.CandidateRecord{
			Providers: []matchmodel.ProviderInput{{Name: "   ", Title: "Unattributed"}},
		}

		merged, decisions := resolver.Resolve(payload, existing)
		assert.Empty(t, merged.Providers)
		assert.Empty(t, decisions)
	})
}
