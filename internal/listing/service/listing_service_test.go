package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdir/directory-data-service/internal/listing/model"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
)

type fakeRepo struct {
	listings map[int64]model.Listing
	nextID   int64
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{listings: make(map[int64]model.Listing)}
}

func (r *fakeRepo) InsertListing(listing model.Listing) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	listing.ListingID = r.nextID
	r.listings[r.nextID] = listing
	return r.nextID, nil
}

func (r *fakeRepo) UpdateListing(listing model.Listing) error {
	if r.err != nil {
		return r.err
	}
	r.listings[listing.ListingID] = listing
	return nil
}

func (r *fakeRepo) GetListingByID(listingID int64) (*model.Listing, error) {
	if r.err != nil {
		return nil, r.err
	}
	listing, ok := r.listings[listingID]
	if !ok {
		return nil, nil
	}
	return &listing, nil
}

func (r *fakeRepo) ListCandidatePool(filter model.PoolFilter) ([]model.Listing, error) {
	if r.err != nil {
		return nil, r.err
	}
	pool := make([]model.Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		pool = append(pool, listing)
	}
	return pool, nil
}

func TestListingService(t *testing.T) {

	t.Run("CreateAndGet", func(t *testing.T) {
		svc := NewListingService(newFakeRepo())
		id, err := svc.CreateCanonical(model.Listing{Name: "Blooming Beauty"})
		require.NoError(t, err)

		listing, err := svc.GetListing(id)
		require.NoError(t, err)
		assert.Equal(t, "Blooming Beauty", listing.Name)
	})

	t.Run("GetUnknownIsNotFound", func(t *testing.T) {
		svc := NewListingService(newFakeRepo())
		_, err := svc.GetListing(404)
		var notFound *errors2.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, errors2.LISTING_NOT_FOUND.Code, notFound.Code)
	})

	t.Run("RepositoryFailureWrapped", func(t *testing.T) {
		repo := newFakeRepo()
		repo.err = errors.New("connection reset")
		svc := NewListingService(repo)

		_, err := svc.CreateCanonical(model.Listing{Name: "Blooming Beauty"})
		var serverErr *errors2.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, errors2.ADD_LISTING.Code, serverErr.Code)

		_, err = svc.ListCandidatePool(model.PoolFilter{})
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, errors2.LIST_CANDIDATE_POOL.Code, serverErr.Code)
	})

	t.Run("UpdatePersists", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewListingService(repo)
		id, err := svc.CreateCanonical(model.Listing{Name: "Blooming Beauty"})
		require.NoError(t, err)

		err = svc.UpdateListing(model.Listing{ListingID: id, Name: "Blooming Beauty", Phone: "555-123-4567"})
		require.NoError(t, err)
		assert.Equal(t, "555-123-4567", repo.listings[id].Phone)
	})
}
