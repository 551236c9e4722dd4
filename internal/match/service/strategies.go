package service

import (
	"fmt"

	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	"github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/match/normalize"
	"github.com/clinicdir/directory-data-service/internal/match/similarity"
)

// Config carries the matching policy knobs. The defaults came out of incident
// remediation, not first principles; they are configurable so they can be
// re-validated against real data.
type Config struct {
	// MaxPlausibleKm is the geographic sanity bound: a non-authoritative
	// match between records farther apart than this is discarded outright.
	MaxPlausibleKm float64

	// MaxAlternates caps how many runner-up matches are surfaced.
	MaxAlternates int

	// NameAddressFloor is the minimum combined name/address score for the
	// fuzzy name+address strategy to fire.
	NameAddressFloor float64

	// NameLocationFloor is the minimum name score for the fuzzy
	// name+location strategy to fire.
	NameLocationFloor float64
}

// DefaultConfig returns the production policy defaults.
func DefaultConfig() Config {
	return Config{
		MaxPlausibleKm:    50,
		MaxAlternates:     5,
		NameAddressFloor:  0.75,
		NameLocationFloor: 0.70,
	}
}

// DuplicateChecker runs the strategy set against a pool of existing listings.
// It is stateless between calls and safe for concurrent use.
type DuplicateChecker struct {
	cfg Config
}

// NewDuplicateChecker creates a checker with the given policy.
func NewDuplicateChecker(cfg Config) *DuplicateChecker {
	return &DuplicateChecker{cfg: cfg}
}

// evaluatePair runs the strategies against one existing listing. An exact
// external identifier match is authoritative and short-circuits the rest of
// the set for this pair.
func (dc *DuplicateChecker) evaluatePair(candidate model.CandidateRecord, existing listingmodel.Listing) []model.MatchResult {
	if result := externalIDExact(candidate, existing); result != nil {
		return []model.MatchResult{*result}
	}

	var results []model.MatchResult
	if result := dc.fuzzyNameAddress(candidate, existing); result != nil {
		results = append(results, *result)
	}
	if result := phoneNormalizedEqual(candidate, existing); result != nil {
		results = append(results, *result)
	}
	if result := websiteDomainMatch(candidate, existing); result != nil {
		results = append(results, *result)
	}
	if result := dc.fuzzyNameLocation(candidate, existing); result != nil {
		results = append(results, *result)
	}
	return results
}

func externalIDExact(candidate model.CandidateRecord, existing listingmodel.Listing) *model.MatchResult {
	if candidate.PlaceID == "" || existing.PlaceID == "" {
		return nil
	}
	if candidate.PlaceID != existing.PlaceID {
		return nil
	}
	return &model.MatchResult{
		ListingID: existing.ListingID,
		Strategy:  model.StrategyExternalIDExact,
		RawScore:  1.0,
		Band:      model.BandHigh,
		Reason:    "identifier match",
	}
}

func (dc *DuplicateChecker) fuzzyNameAddress(candidate model.CandidateRecord, existing listingmodel.Listing) *model.MatchResult {
	nameA := normalize.Name(candidate.Name)
	nameB := normalize.Name(existing.Name)
	if nameA == "" || nameB == "" {
		return nil
	}
	addrA := normalize.Address(candidate.Address)
	addrB := normalize.Address(existing.Address)

	combined := 0.6*similarity.Ratio(nameA, nameB) + 0.4*similarity.Ratio(addrA, addrB)
	if combined < dc.cfg.NameAddressFloor {
		return nil
	}

	band := model.BandMedium
	if combined >= 0.90 {
		band = model.BandHigh
	}
	return &model.MatchResult{
		ListingID: existing.ListingID,
		Strategy:  model.StrategyFuzzyNameAddress,
		RawScore:  combined,
		Band:      band,
		Reason:    fmt.Sprintf("name/address similarity %.2f", combined),
	}
}

func phoneNormalizedEqual(candidate model.CandidateRecord, existing listingmodel.Listing) *model.MatchResult {
	phoneA := normalize.Phone(candidate.Phone)
	phoneB := normalize.Phone(existing.Phone)
	if phoneA == "" || phoneA != phoneB {
		return nil
	}
	return &model.MatchResult{
		ListingID: existing.ListingID,
		Strategy:  model.StrategyPhoneNormalized,
		RawScore:  0.9,
		Band:      model.BandMedium,
		Reason:    "phone number match",
	}
}

func websiteDomainMatch(candidate model.CandidateRecord, existing listingmodel.Listing) *model.MatchResult {
	domainA := normalize.Domain(candidate.Website)
	domainB := normalize.Domain(existing.Website)
	if domainA == "" || domainA != domainB {
		return nil
	}
	return &model.MatchResult{
		ListingID: existing.ListingID,
		Strategy:  model.StrategyWebsiteDomain,
		RawScore:  0.7,
		Band:      model.BandLow,
		Reason:    "website domain match",
	}
}

func (dc *DuplicateChecker) fuzzyNameLocation(candidate model.CandidateRecord, existing listingmodel.Listing) *model.MatchResult {
	cityA := normalize.Address(candidate.City)
	cityB := normalize.Address(existing.City)
	stateA := normalize.Address(candidate.State)
	stateB := normalize.Address(existing.State)
	if cityA == "" || cityA != cityB || stateA == "" || stateA != stateB {
		return nil
	}

	nameA := normalize.Name(candidate.Name)
	nameB := normalize.Name(existing.Name)
	if nameA == "" || nameB == "" {
		return nil
	}

	nameScore := similarity.Ratio(nameA, nameB)
	if nameScore < dc.cfg.NameLocationFloor {
		return nil
	}

	band := model.BandLow
	if nameScore >= 0.85 {
		band = model.BandMedium
	}
	return &model.MatchResult{
		ListingID: existing.ListingID,
		Strategy:  model.StrategyFuzzyNameLocation,
		RawScore:  nameScore,
		Band:      band,
		Reason:    fmt.Sprintf("name similarity %.2f in same locality", nameScore),
	}
}
