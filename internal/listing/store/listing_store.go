package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/clinicdir/directory-data-service/internal/listing/model"
	"github.com/clinicdir/directory-data-service/internal/system/database/provider"
)

// ListingRepository handles postgres operations for canonical listings.
type ListingRepository struct {
	dbProvider provider.DBProviderInterface
}

// NewListingRepository creates a new repository instance.
func NewListingRepository(dbProvider provider.DBProviderInterface) *ListingRepository {
	return &ListingRepository{
		dbProvider: dbProvider,
	}
}

// InsertListing creates a canonical listing with its child rows and returns
// the new listing id.
func (repo *ListingRepository) InsertListing(listing model.Listing) (int64, error) {
	dbClient, err := repo.dbProvider.GetDBClient()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get DB client")
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}

	now := time.Now().UTC()
	query := `INSERT INTO listings
		(name, address, city, state, phone, website, email, category, place_id, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING listing_id`

	var listingID int64
	err = tx.QueryRow(query, listing.Name, listing.Address, listing.City, listing.State,
		listing.Phone, listing.Website, listing.Email, listing.Category, listing.PlaceID,
		listing.Latitude, listing.Longitude, now, now).Scan(&listingID)
	if err != nil {
		tx.Rollback()
		return 0, errors.Wrap(err, "failed to insert listing")
	}

	if err := insertChildren(tx, listingID, listing.Providers, listing.Procedures); err != nil {
		tx.Rollback()
		return 0, err
	}

	return listingID, tx.Commit()
}

// UpdateListing replaces the listing row and its child rows. Used when a
// merge resolution is applied.
func (repo *ListingRepository) UpdateListing(listing model.Listing) error {
	dbClient, err := repo.dbProvider.GetDBClient()
	if err != nil {
		return errors.Wrap(err, "failed to get DB client")
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	query := `UPDATE listings SET
		name = $1, address = $2, city = $3, state = $4, phone = $5, website = $6,
		email = $7, category = $8, place_id = $9, latitude = $10, longitude = $11, updated_at = $12
		WHERE listing_id = $13`
	_, err = tx.Exec(query, listing.Name, listing.Address, listing.City, listing.State,
		listing.Phone, listing.Website, listing.Email, listing.Category, listing.PlaceID,
		listing.Latitude, listing.Longitude, time.Now().UTC(), listing.ListingID)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "failed to update listing")
	}

	if _, err = tx.Exec(`DELETE FROM listing_providers WHERE listing_id = $1`, listing.ListingID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "failed to clear listing providers")
	}
	if _, err = tx.Exec(`DELETE FROM listing_procedures WHERE listing_id = $1`, listing.ListingID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "failed to clear listing procedures")
	}
	if err := insertChildren(tx, listing.ListingID, listing.Providers, listing.Procedures); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetListingByID fetches a listing and its child rows.
func (repo *ListingRepository) GetListingByID(listingID int64) (*model.Listing, error) {
	dbClient, err := repo.dbProvider.GetDBClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get DB client")
	}
	defer dbClient.Close()

	query := `SELECT listing_id, name, address, city, state, phone, website, email, category,
		place_id, latitude, longitude, created_at, updated_at
		FROM listings WHERE listing_id = $1`
	rows, err := dbClient.ExecuteQuery(query, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch listing")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	listing := mapRowToListing(rows[0])

	providerRows, err := dbClient.ExecuteQuery(
		`SELECT provider_id, name, title FROM listing_providers WHERE listing_id = $1 ORDER BY provider_id`, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch listing providers")
	}
	for _, row := range providerRows {
		listing.Providers = append(listing.Providers, model.Provider{
			ProviderID: toInt64(row["provider_id"]),
			Name:       toString(row["name"]),
			Title:      toString(row["title"]),
		})
	}

	procedureRows, err := dbClient.ExecuteQuery(
		`SELECT procedure_id, name, category FROM listing_procedures WHERE listing_id = $1 ORDER BY procedure_id`, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch listing procedures")
	}
	for _, row := range procedureRows {
		listing.Procedures = append(listing.Procedures, model.Procedure{
			ProcedureID: toInt64(row["procedure_id"]),
			Name:        toString(row["name"]),
			Category:    toString(row["category"]),
		})
	}

	return listing, nil
}

// ListCandidatePool fetches the existing-listing pool scored during duplicate
// checks. Child rows are not needed for scoring and are left unloaded.
func (repo *ListingRepository) ListCandidatePool(filter model.PoolFilter) ([]model.Listing, error) {
	dbClient, err := repo.dbProvider.GetDBClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get DB client")
	}
	defer dbClient.Close()

	query := `SELECT listing_id, name, address, city, state, phone, website, email, category,
		place_id, latitude, longitude, created_at, updated_at
		FROM listings`
	var args []interface{}
	var conditions []string

	if filter.State != "" {
		args = append(args, filter.State)
		conditions = append(conditions, fmt.Sprintf("lower(state) = lower($%d)", len(args)))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("lower(city) = lower($%d)", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY listing_id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch candidate pool")
	}

	listings := make([]model.Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, *mapRowToListing(row))
	}
	return listings, nil
}

func insertChildren(tx *sql.Tx, listingID int64, providers []model.Provider, procedures []model.Procedure) error {
	for _, provider := range providers {
		_, err := tx.Exec(`INSERT INTO listing_providers (listing_id, name, title) VALUES ($1, $2, $3)`,
			listingID, provider.Name, provider.Title)
		if err != nil {
			return errors.Wrap(err, "failed to insert listing provider")
		}
	}
	for _, procedure := range procedures {
		_, err := tx.Exec(`INSERT INTO listing_procedures (listing_id, name, category) VALUES ($1, $2, $3)`,
			listingID, procedure.Name, procedure.Category)
		if err != nil {
			return errors.Wrap(err, "failed to insert listing procedure")
		}
	}
	return nil
}

// Helper function to map a DB result row to a Listing model.
func mapRowToListing(row map[string]interface{}) *model.Listing {
	return &model.Listing{
		ListingID: toInt64(row["listing_id"]),
		Name:      toString(row["name"]),
		Address:   toString(row["address"]),
		City:      toString(row["city"]),
		State:     toString(row["state"]),
		Phone:     toString(row["phone"]),
		Website:   toString(row["website"]),
		Email:     toString(row["email"]),
		Category:  toString(row["category"]),
		PlaceID:   toString(row["place_id"]),
		Latitude:  toFloatPtr(row["latitude"]),
		Longitude: toFloatPtr(row["longitude"]),
		CreatedAt: toTime(row["created_at"]),
		UpdatedAt: toTime(row["updated_at"]),
	}
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toInt64(value interface{}) int64 {
	if v, ok := value.(int64); ok {
		return v
	}
	return 0
}

func toFloatPtr(value interface{}) *float64 {
	if v, ok := value.(float64); ok {
		return &v
	}
	return nil
}

func toTime(value interface{}) time.Time {
	if v, ok := value.(time.Time); ok {
		return v
	}
	return time.Time{}
}
