package service

import (
	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/match/normalize"
	"github.com/clinicdir/directory-data-service/internal/merge/model"
)

// MergeResolverInterface resolves how a submission combines with the existing
// listing a reviewer chose to merge into.
type MergeResolverInterface interface {
	Resolve(payload matchmodel.CandidateRecord, existing listingmodel.Listing) (listingmodel.Listing, []model.MergeDecision)
}

// MergeResolver is the default implementation of MergeResolverInterface.
type MergeResolver struct{}

// GetMergeResolver returns the merge resolver instance.
func GetMergeResolver() MergeResolverInterface {
	return &MergeResolver{}
}

// Resolve merges a submission into an existing listing. Scalar fields follow
// update semantics: the existing value wins when non-empty, the submission
// only fills gaps and never overwrites populated data. Child collections are
// unioned by normalized name, so a resubmitted provider or procedure updates
// the existing child instead of duplicating it.
func (mr *MergeResolver) Resolve(payload matchmodel.CandidateRecord, existing listingmodel.Listing) (listingmodel.Listing, []model.MergeDecision) {
	merged := existing
	var decisions []model.MergeDecision

	resolveField := func(field string, existingValue *string, submitted string) {
		if *existingValue != "" {
			if submitted != "" && submitted != *existingValue {
				decisions = append(decisions, model.MergeDecision{
					Field:  field,
					Action: model.ActionKeptExisting,
					Value:  *existingValue,
				})
			}
			return
		}
		if submitted == "" {
			return
		}
		*existingValue = submitted
		decisions = append(decisions, model.MergeDecision{
			Field:  field,
			Action: model.ActionFilledFromSubmission,
			Value:  submitted,
		})
	}

	resolveField("name", &merged.Name, payload.Name)
	resolveField("address", &merged.Address, payload.Address)
	resolveField("city", &merged.City, payload.City)
	resolveField("state", &merged.State, payload.State)
	resolveField("phone", &merged.Phone, payload.Phone)
	resolveField("website", &merged.Website, payload.Website)
	resolveField("email", &merged.Email, payload.Email)
	resolveField("category", &merged.Category, payload.Category)
	resolveField("place_id", &merged.PlaceID, payload.PlaceID)

	if merged.Latitude == nil && merged.Longitude == nil &&
		payload.Latitude != nil && payload.Longitude != nil {
		merged.Latitude = payload.Latitude
		merged.Longitude = payload.Longitude
		decisions = append(decisions, model.MergeDecision{
			Field:  "coordinates",
			Action: model.ActionFilledFromSubmission,
		})
	}

	decisions = append(decisions, mr.mergeProviders(&merged, payload.Providers)...)
	decisions = append(decisions, mr.mergeProcedures(&merged, payload.Procedures)...)

	return merged, decisions
}

func (mr *MergeResolver) mergeProviders(merged *listingmodel.Listing, incoming []matchmodel.ProviderInput) []model.MergeDecision {
	var decisions []model.MergeDecision

	byName := make(map[string]int, len(merged.Providers))
	for i, provider := range merged.Providers {
		byName[normalize.Name(provider.Name)] = i
	}

	for _, input := range incoming {
		key := normalize.Name(input.Name)
		if key == "" {
			continue
		}
		if i, ok := byName[key]; ok {
			if merged.Providers[i].Title == "" && input.Title != "" {
				merged.Providers[i].Title = input.Title
				decisions = append(decisions, model.MergeDecision{
					Field:  "providers." + key,
					Action: model.ActionChildUpdated,
					Value:  input.Title,
				})
			}
			continue
		}
		merged.Providers = append(merged.Providers, listingmodel.Provider{
			Name:  input.Name,
			Title: input.Title,
		})
		byName[key] = len(merged.Providers) - 1
		decisions = append(decisions, model.MergeDecision{
			Field:  "providers." + key,
			Action: model.ActionChildAdded,
			Value:  input.Name,
		})
	}
	return decisions
}

func (mr *MergeResolver) mergeProcedures(merged *listingmodel.Listing, incoming []matchmodel.ProcedureInput) []model.MergeDecision {
	var decisions []model.MergeDecision

	byName := make(map[string]int, len(merged.Procedures))
	for i, procedure := range merged.Procedures {
		byName[normalize.Name(procedure.Name)] = i
	}

	for _, input := range incoming {
		key := normalize.Name(input.Name)
		if key == "" {
			continue
		}
		if i, ok := byName[key]; ok {
			if merged.Procedures[i].Category == "" && input.Category != "" {
				merged.Procedures[i].Category = input.Category
				decisions = append(decisions, model.MergeDecision{
					Field:  "procedures." + key,
					Action: model.ActionChildUpdated,
					Value:  input.Category,
				})
			}
			continue
		}
		merged.Procedures = append(merged.Procedures, listingmodel.Procedure{
			Name:     input.Name,
			Category: input.Category,
		})
		byName[key] = len(merged.Procedures) - 1
		decisions = append(decisions, model.MergeDecision{
			Field:  "procedures." + key,
			Action: model.ActionChildAdded,
			Value:  input.Name,
		})
	}
	return decisions
}
