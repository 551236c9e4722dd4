package service

import (
	"github.com/clinicdir/directory-data-service/internal/listing/model"
	"github.com/clinicdir/directory-data-service/internal/listing/store"
	dbprovider "github.com/clinicdir/directory-data-service/internal/system/database/provider"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
)

// ListingRepository decouples the service from the postgres store.
type ListingRepository interface {
	InsertListing(listing model.Listing) (int64, error)
	UpdateListing(listing model.Listing) error
	GetListingByID(listingID int64) (*model.Listing, error)
	ListCandidatePool(filter model.PoolFilter) ([]model.Listing, error)
}

// ListingServiceInterface is the canonical-record surface consumed by
// handlers and the draft lifecycle.
type ListingServiceInterface interface {
	CreateCanonical(listing model.Listing) (int64, error)
	GetListing(listingID int64) (*model.Listing, error)
	UpdateListing(listing model.Listing) error
	ListCandidatePool(filter model.PoolFilter) ([]model.Listing, error)
}

// ListingService is the default implementation of ListingServiceInterface.
type ListingService struct {
	repo ListingRepository
}

// GetListingService returns a listing service backed by the configured
// datasource.
func GetListingService() ListingServiceInterface {
	return &ListingService{
		repo: store.NewListingRepository(dbprovider.NewDBProvider()),
	}
}

// NewListingService creates a listing service with an explicit repository.
func NewListingService(repo ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// CreateCanonical persists a new canonical listing and returns its id.
func (s *ListingService) CreateCanonical(listing model.Listing) (int64, error) {
	listingID, err := s.repo.InsertListing(listing)
	if err != nil {
		return 0, errors2.NewServerError(errors2.ADD_LISTING, err)
	}
	return listingID, nil
}

// GetListing fetches a listing by id.
func (s *ListingService) GetListing(listingID int64) (*model.Listing, error) {
	listing, err := s.repo.GetListingByID(listingID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GET_LISTING, err)
	}
	if listing == nil {
		return nil, errors2.NewNotFoundError(errors2.LISTING_NOT_FOUND)
	}
	return listing, nil
}

// UpdateListing persists an updated listing, typically a merge resolution.
func (s *ListingService) UpdateListing(listing model.Listing) error {
	if err := s.repo.UpdateListing(listing); err != nil {
		return errors2.NewServerError(errors2.UPDATE_LISTING, err)
	}
	return nil
}

// ListCandidatePool fetches the pool of existing listings scored during a
// duplicate check.
func (s *ListingService) ListCandidatePool(filter model.PoolFilter) ([]model.Listing, error) {
	pool, err := s.repo.ListCandidatePool(filter)
	if err != nil {
		return nil, errors2.NewServerError(errors2.LIST_CANDIDATE_POOL, err)
	}
	return pool, nil
}
