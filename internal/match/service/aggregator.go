package service

import (
	"sort"

	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	"github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/match/similarity"
	"github.com/clinicdir/directory-data-service/internal/system/errors"
)

// CheckDuplicates scores the candidate against every listing in the pool and
// reduces the surviving results to a best match plus ranked alternates.
// The computation is pure: same candidate and pool always yield the same
// summary.
func (dc *DuplicateChecker) CheckDuplicates(candidate model.CandidateRecord, pool []listingmodel.Listing) model.MatchSummary {
	var results []model.MatchResult
	for _, existing := range pool {
		pairResults := dc.evaluatePair(candidate, existing)
		pairResults = dc.applyGeoVeto(candidate, existing, pairResults)
		if best := bestOf(pairResults); best != nil {
			results = append(results, *best)
		}
	}

	sortResults(results)

	if len(results) == 0 {
		return model.MatchSummary{HasDuplicates: false}
	}

	best := results[0]
	alternates := results[1:]
	if len(alternates) > dc.cfg.MaxAlternates {
		alternates = alternates[:dc.cfg.MaxAlternates]
	}

	return model.MatchSummary{
		HasDuplicates:  true,
		ConfidenceBand: best.Band,
		BestMatch:      &best,
		Alternates:     alternates,
	}
}

// applyGeoVeto discards every non-authoritative result when both sides carry
// coordinates and they lie implausibly far apart. A vetoed result does not
// survive even as a low-confidence alternate: accepting fuzzy matches across
// large distances is how two listings 1,589 km apart were once merged.
// When either coordinate is missing the distance is unknown and the veto
// fails open; unknown distance is not evidence against a match.
func (dc *DuplicateChecker) applyGeoVeto(candidate model.CandidateRecord, existing listingmodel.Listing, results []model.MatchResult) []model.MatchResult {
	if len(results) == 0 {
		return results
	}
	if candidate.Latitude == nil || candidate.Longitude == nil ||
		existing.Latitude == nil || existing.Longitude == nil {
		return results
	}

	distanceKm := similarity.HaversineKm(*candidate.Latitude, *candidate.Longitude,
		*existing.Latitude, *existing.Longitude)
	if distanceKm <= dc.cfg.MaxPlausibleKm {
		return results
	}

	surviving := results[:0]
	for _, result := range results {
		if result.Strategy == model.StrategyExternalIDExact {
			surviving = append(surviving, result)
		}
	}
	return surviving
}

// bestOf deduplicates the per-pair results down to the strongest one, so each
// existing listing appears at most once in the ranked output.
func bestOf(results []model.MatchResult) *model.MatchResult {
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	for _, result := range results[1:] {
		if lessMatch(result, best) {
			best = result
		}
	}
	return &best
}

// sortResults ranks descending by raw score; ties go to the exact-identifier
// strategy, then to the lower listing id, so the ordering is reproducible.
func sortResults(results []model.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return lessMatch(results[i], results[j])
	})
}

func lessMatch(a, b model.MatchResult) bool {
	if a.RawScore != b.RawScore {
		return a.RawScore > b.RawScore
	}
	aExact := a.Strategy == model.StrategyExternalIDExact
	bExact := b.Strategy == model.StrategyExternalIDExact
	if aExact != bExact {
		return aExact
	}
	return a.ListingID < b.ListingID
}

// CandidatePoolProvider supplies the existing-listing pool scored against.
type CandidatePoolProvider interface {
	ListCandidatePool(filter listingmodel.PoolFilter) ([]listingmodel.Listing, error)
}

// DuplicateCheckServiceInterface is the duplicate-check entry point exposed
// to handlers and the draft lifecycle.
type DuplicateCheckServiceInterface interface {
	CheckCandidate(candidate model.CandidateRecord) (model.MatchSummary, error)
}

// DuplicateCheckService wires the pure checker to the candidate pool source.
// The pool handle is explicit: the engine holds no ambient persistence state.
type DuplicateCheckService struct {
	checker *DuplicateChecker
	pool    CandidatePoolProvider
}

// NewDuplicateCheckService creates a duplicate check service.
func NewDuplicateCheckService(checker *DuplicateChecker, pool CandidatePoolProvider) *DuplicateCheckService {
	return &DuplicateCheckService{
		checker: checker,
		pool:    pool,
	}
}

// CheckCandidate fetches the candidate pool and scores the candidate against
// it. A result with HasDuplicates=false is a normal outcome, not a failure.
func (s *DuplicateCheckService) CheckCandidate(candidate model.CandidateRecord) (model.MatchSummary, error) {
	pool, err := s.pool.ListCandidatePool(listingmodel.PoolFilter{})
	if err != nil {
		return model.MatchSummary{}, errors.NewServerError(errors.LIST_CANDIDATE_POOL, err)
	}
	return s.checker.CheckDuplicates(candidate, pool), nil
}
