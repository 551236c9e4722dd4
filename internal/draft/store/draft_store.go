package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicdir/directory-data-service/internal/draft/model"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
)

// DraftRepository handles document-store operations for drafts.
type DraftRepository struct {
	Collection *mongo.Collection
}

// NewDraftRepository creates a new repository instance.
func NewDraftRepository(db *mongo.Database, collectionName string) *DraftRepository {
	return &DraftRepository{
		Collection: db.Collection(collectionName),
	}
}

// InsertDraft saves a new draft document.
func (repo *DraftRepository) InsertDraft(draft model.Draft) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.Collection.InsertOne(ctx, draft)
	return err
}

// FindDraftByID retrieves a draft by draft_id. Returns nil when no draft
// exists.
func (repo *DraftRepository) FindDraftByID(draftID string) (*model.Draft, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var draft model.Draft
	err := repo.Collection.FindOne(ctx, bson.M{"draft_id": draftID}).Decode(&draft)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

// UpdatePayload replaces the payload and recomputed match set of a draft
// that has not reached a terminal state. Returns false when the draft was
// already terminal (or gone), in which case nothing was written.
func (repo *DraftRepository) UpdatePayload(draftID string, payload matchmodel.CandidateRecord,
	matches []matchmodel.MatchResult, status string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"draft_id": draftID,
		"status":   bson.M{"$in": []string{model.StatusDraft, model.StatusPendingReview}},
	}
	update := bson.M{"$set": bson.M{
		"payload":           payload,
		"duplicate_matches": matches,
		"status":            status,
		"updated_at":        time.Now().UTC(),
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

// TransitionStatus applies a compare-and-swap on the draft status: the
// update commits only if the status still equals expected. Returns false
// when the swap was lost, so the caller can fail with a conflict instead of
// double-applying a terminal transition.
func (repo *DraftRepository) TransitionStatus(draftID, expected, next string, fields map[string]interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     next,
		"updated_at": time.Now().UTC(),
	}
	for key, value := range fields {
		set[key] = value
	}

	filter := bson.M{"draft_id": draftID, "status": expected}
	result, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}
