package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdir/directory-data-service/internal/draft/model"
	geocode "github.com/clinicdir/directory-data-service/internal/geocode/client"
	listingmodel "github.com/clinicdir/directory-data-service/internal/listing/model"
	listingservice "github.com/clinicdir/directory-data-service/internal/listing/service"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	matchservice "github.com/clinicdir/directory-data-service/internal/match/service"
	mergeservice "github.com/clinicdir/directory-data-service/internal/merge/service"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/log"
)

// DraftRepositoryInterface decouples the lifecycle from the document store.
type DraftRepositoryInterface interface {
	InsertDraft(draft model.Draft) error
	FindDraftByID(draftID string) (*model.Draft, error)
	UpdatePayload(draftID string, payload matchmodel.CandidateRecord, matches []matchmodel.MatchResult, status string) (bool, error)
	TransitionStatus(draftID, expected, next string, fields map[string]interface{}) (bool, error)
}

// DraftServiceInterface is the draft lifecycle surface.
type DraftServiceInterface interface {
	CreateDraft(payload matchmodel.CandidateRecord, source string) (*model.Draft, error)
	GetDraft(draftID string) (*model.Draft, error)
	UpdateDraftPayload(draftID string, payload matchmodel.CandidateRecord) (*model.Draft, error)
	ApproveDraft(draftID string) (*model.Draft, error)
	RejectDraft(draftID, notes string) (*model.Draft, error)
	MergeDraft(draftID string, targetListingID int64, notes string) (*model.Draft, error)
}

// approvalFields are required on the payload before a draft may be approved
// into a canonical listing.
var approvalFields = []struct {
	name  string
	value func(matchmodel.CandidateRecord) string
}{
	{"website", func(p matchmodel.CandidateRecord) string { return p.Website }},
	{"phone", func(p matchmodel.CandidateRecord) string { return p.Phone }},
	{"email", func(p matchmodel.CandidateRecord) string { return p.Email }},
	{"place_id", func(p matchmodel.CandidateRecord) string { return p.PlaceID }},
	{"category", func(p matchmodel.CandidateRecord) string { return p.Category }},
}

// DraftService implements the lifecycle. Every persistence and engine handle
// is injected explicitly; the service holds no ambient global state.
type DraftService struct {
	drafts   DraftRepositoryInterface
	listings listingservice.ListingServiceInterface
	dupCheck matchservice.DuplicateCheckServiceInterface
	resolver mergeservice.MergeResolverInterface
	geo      geocode.GeoProviderInterface
}

// NewDraftService creates a draft service with explicit collaborators. geo
// may be nil when coordinate enrichment is disabled.
func NewDraftService(drafts DraftRepositoryInterface, listings listingservice.ListingServiceInterface,
	dupCheck matchservice.DuplicateCheckServiceInterface, resolver mergeservice.MergeResolverInterface,
	geo geocode.GeoProviderInterface) *DraftService {
	return &DraftService{
		drafts:   drafts,
		listings: listings,
		dupCheck: dupCheck,
		resolver: resolver,
		geo:      geo,
	}
}

// CreateDraft stores a new submission. A minimally complete payload (name,
// address, city, state) enters the review queue directly with its duplicate
// match set attached; anything less parks as a plain draft.
func (s *DraftService) CreateDraft(payload matchmodel.CandidateRecord, source string) (*model.Draft, error) {
	payload = s.enrichCoordinates(payload)

	status := model.StatusDraft
	var matches []matchmodel.MatchResult
	if isMinimallyComplete(payload) {
		summary, err := s.dupCheck.CheckCandidate(payload)
		if err != nil {
			return nil, err
		}
		status = model.StatusPendingReview
		matches = summary.Results()
	}

	now := time.Now().UTC()
	draft := model.Draft{
		DraftID:          uuid.New().String(),
		Status:           status,
		Source:           source,
		Payload:          payload,
		DuplicateMatches: matches,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.drafts.InsertDraft(draft); err != nil {
		return nil, errors2.NewServerError(errors2.ADD_DRAFT, err)
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypePartner,
		TargetID:      draft.DraftID,
		TargetType:    log.TargetTypeDraft,
		ActionID:      log.ActionCreateDraft,
		Data: map[string]string{
			"source": source,
			"status": status,
		},
	})
	return &draft, nil
}

// GetDraft fetches a draft by id.
func (s *DraftService) GetDraft(draftID string) (*model.Draft, error) {
	draft, err := s.drafts.FindDraftByID(draftID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GET_DRAFT, err)
	}
	if draft == nil {
		return nil, errors2.NewNotFoundError(errors2.DRAFT_NOT_FOUND)
	}
	return draft, nil
}

// UpdateDraftPayload replaces the payload of a non-terminal draft and
// recomputes its duplicate match set. Terminal drafts are frozen: any change
// requires a new submission.
func (s *DraftService) UpdateDraftPayload(draftID string, payload matchmodel.CandidateRecord) (*model.Draft, error) {
	draft, err := s.GetDraft(draftID)
	if err != nil {
		return nil, err
	}
	if model.IsTerminal(draft.Status) {
		return nil, errors2.NewConflictError(errors2.DRAFT_PAYLOAD_FROZEN)
	}

	payload = s.enrichCoordinates(payload)

	status := model.StatusDraft
	var matches []matchmodel.MatchResult
	if isMinimallyComplete(payload) {
		summary, err := s.dupCheck.CheckCandidate(payload)
		if err != nil {
			return nil, err
		}
		status = model.StatusPendingReview
		matches = summary.Results()
	}

	updated, err := s.drafts.UpdatePayload(draftID, payload, matches, status)
	if err != nil {
		return nil, errors2.NewServerError(errors2.UPDATE_DRAFT, err)
	}
	if !updated {
		// A concurrent terminal transition won; nothing was written.
		return nil, errors2.NewConflictError(errors2.DRAFT_PAYLOAD_FROZEN)
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypePartner,
		TargetID:      draftID,
		TargetType:    log.TargetTypeDraft,
		ActionID:      log.ActionUpdateDraft,
		Data:          map[string]string{"status": status},
	})
	return s.GetDraft(draftID)
}

// ApproveDraft turns a pending draft into a new canonical listing. The
// payload must carry website, phone, email, external place id, and category;
// otherwise the transition fails with a validation error naming the missing
// fields and no state changes.
func (s *DraftService) ApproveDraft(draftID string) (*model.Draft, error) {
	draft, err := s.GetDraft(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != model.StatusPendingReview {
		return nil, errors2.NewConflictError(errors2.DRAFT_NOT_PENDING)
	}

	var missing []string
	for _, field := range approvalFields {
		if field.value(draft.Payload) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, errors2.NewValidationError(errors2.DRAFT_INCOMPLETE_FOR_APPROVAL, missing)
	}

	// The swap decides the race: exactly one approve/reject/merge wins.
	won, err := s.drafts.TransitionStatus(draftID, model.StatusPendingReview, model.StatusApproved, nil)
	if err != nil {
		return nil, errors2.NewServerError(errors2.TRANSITION_DRAFT, err)
	}
	if !won {
		return nil, errors2.NewConflictError(errors2.DRAFT_TRANSITION_LOST)
	}

	listingID, err := s.listings.CreateCanonical(listingFromPayload(draft.Payload))
	if err != nil {
		log.GetLogger().Error(fmt.Sprintf("Draft %s approved but canonical listing creation failed", draftID),
			log.Error(err))
		return nil, err
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeReviewer,
		TargetID:      draftID,
		TargetType:    log.TargetTypeDraft,
		ActionID:      log.ActionApproveDraft,
		Data:          map[string]int64{"listing_id": listingID},
	})
	return s.GetDraft(draftID)
}

// RejectDraft terminally rejects a pending draft. Free-text notes explain
// the rejection; there is no other precondition and no side effect.
func (s *DraftService) RejectDraft(draftID, notes string) (*model.Draft, error) {
	draft, err := s.GetDraft(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != model.StatusPendingReview {
		return nil, errors2.NewConflictError(errors2.DRAFT_NOT_PENDING)
	}

	won, err := s.drafts.TransitionStatus(draftID, model.StatusPendingReview, model.StatusRejected,
		map[string]interface{}{"reviewer_notes": notes})
	if err != nil {
		return nil, errors2.NewServerError(errors2.TRANSITION_DRAFT, err)
	}
	if !won {
		return nil, errors2.NewConflictError(errors2.DRAFT_TRANSITION_LOST)
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeReviewer,
		TargetID:      draftID,
		TargetType:    log.TargetTypeDraft,
		ActionID:      log.ActionRejectDraft,
	})
	return s.GetDraft(draftID)
}

// MergeDraft merges a pending draft into the existing listing chosen by the
// reviewer. The target id always comes from a human choice, never from the
// engine's ranking directly.
func (s *DraftService) MergeDraft(draftID string, targetListingID int64, notes string) (*model.Draft, error) {
	if targetListingID <= 0 {
		return nil, errors2.NewValidationError(errors2.MERGE_TARGET_REQUIRED, []string{"existing_id"})
	}

	draft, err := s.GetDraft(draftID)
	if err != nil {
		return nil, err
	}
	if draft.Status != model.StatusPendingReview {
		return nil, errors2.NewConflictError(errors2.DRAFT_NOT_PENDING)
	}

	target, err := s.listings.GetListing(targetListingID)
	if err != nil {
		return nil, err
	}

	// Attaching a new duplicate listing id replaces any previous choice.
	won, err := s.drafts.TransitionStatus(draftID, model.StatusPendingReview, model.StatusMerged,
		map[string]interface{}{
			"duplicate_listing_id": targetListingID,
			"reviewer_notes":       notes,
		})
	if err != nil {
		return nil, errors2.NewServerError(errors2.TRANSITION_DRAFT, err)
	}
	if !won {
		return nil, errors2.NewConflictError(errors2.DRAFT_TRANSITION_LOST)
	}

	merged, decisions := s.resolver.Resolve(draft.Payload, *target)
	if err := s.listings.UpdateListing(merged); err != nil {
		log.GetLogger().Error(fmt.Sprintf("Draft %s merged but listing update failed", draftID), log.Error(err))
		return nil, err
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeReviewer,
		TargetID:      draftID,
		TargetType:    log.TargetTypeDraft,
		ActionID:      log.ActionMergeDraft,
		Data: map[string]interface{}{
			"listing_id":     targetListingID,
			"resolved_count": len(decisions),
		},
	})
	return s.GetDraft(draftID)
}

// enrichCoordinates asks the geo provider for coordinates when the payload
// lacks them. Lookup failure is tolerated: the veto fails open on unknown
// distance, so scoring proceeds without coordinates.
func (s *DraftService) enrichCoordinates(payload matchmodel.CandidateRecord) matchmodel.CandidateRecord {
	if s.geo == nil || (payload.Latitude != nil && payload.Longitude != nil) {
		return payload
	}
	coords, err := s.geo.LookupCoordinates(payload)
	if err != nil {
		log.GetLogger().Warn("Coordinate lookup failed; scoring without coordinates", log.Error(err))
		return payload
	}
	if coords != nil {
		payload.Latitude = &coords.Latitude
		payload.Longitude = &coords.Longitude
	}
	return payload
}

// isMinimallyComplete reports whether the payload is complete enough to
// enter the review queue.
func isMinimallyComplete(payload matchmodel.CandidateRecord) bool {
	return payload.Name != "" && payload.Address != "" && payload.City != "" && payload.State != ""
}

func listingFromPayload(payload matchmodel.CandidateRecord) listingmodel.Listing {
	listing := listingmodel.Listing{
		Name:      payload.Name,
		Address:   payload.Address,
		City:      payload.City,
		State:     payload.State,
		Phone:     payload.Phone,
		Website:   payload.Website,
		Email:     payload.Email,
		Category:  payload.Category,
		PlaceID:   payload.PlaceID,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	}
	for _, provider := range payload.Providers {
		listing.Providers = append(listing.Providers, listingmodel.Provider{
			Name:  provider.Name,
			Title: provider.Title,
		})
	}
	for _, procedure := range payload.Procedures {
		listing.Procedures = append(listing.Procedures, listingmodel.Procedure{
			Name:     procedure.Name,
			Category: procedure.Category,
		})
	}
	return listing
}
