package service

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdir/directory-data-service/internal/importer/model"
	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/system/constants"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
	"github.com/clinicdir/directory-data-service/internal/system/log"
)

// RowQueue is where accepted rows go for asynchronous draft creation.
type RowQueue interface {
	Enqueue(row model.ImportRow)
}

// ImportServiceInterface is the bulk import surface.
type ImportServiceInterface interface {
	EnqueueBatch(source string, records []matchmodel.CandidateRecord) (*model.ImportBatch, error)
	GetBatch(batchID string) (*model.ImportBatch, error)
}

// batchTracker keeps batch progress in memory. Import batches are transient
// bookkeeping: they do not survive a restart, only the drafts they create do.
type batchTracker struct {
	mu      sync.RWMutex
	batches map[string]*model.ImportBatch
}

var tracker = &batchTracker{batches: make(map[string]*model.ImportBatch)}

// ImportService accepts bulk submissions and hands rows to the queue.
type ImportService struct {
	queue RowQueue
}

// NewImportService creates an import service backed by the given row queue.
func NewImportService(queue RowQueue) *ImportService {
	return &ImportService{queue: queue}
}

// EnqueueBatch registers a batch and queues every record for draft creation.
func (s *ImportService) EnqueueBatch(source string, records []matchmodel.CandidateRecord) (*model.ImportBatch, error) {
	if len(records) == 0 {
		return nil, errors2.NewClientError(errors2.IMPORT_EMPTY, http.StatusBadRequest)
	}
	if source == "" {
		source = constants.SourceBulkImport
	}

	now := time.Now().UTC()
	batch := &model.ImportBatch{
		BatchID:   uuid.New().String(),
		Source:    source,
		Status:    model.BatchQueued,
		Total:     len(records),
		CreatedAt: now,
		UpdatedAt: now,
	}

	tracker.mu.Lock()
	tracker.batches[batch.BatchID] = batch
	tracker.mu.Unlock()

	for _, record := range records {
		s.queue.Enqueue(model.ImportRow{
			BatchID: batch.BatchID,
			Source:  source,
			Payload: record,
		})
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypePartner,
		TargetID:      batch.BatchID,
		TargetType:    log.TargetTypeImportBatch,
		ActionID:      log.ActionBulkImport,
		Data:          map[string]int{"total": batch.Total},
	})
	return snapshot(batch.BatchID), nil
}

// GetBatch returns the current progress of a batch.
func (s *ImportService) GetBatch(batchID string) (*model.ImportBatch, error) {
	batch := snapshot(batchID)
	if batch == nil {
		return nil, errors2.NewNotFoundError(errors2.IMPORT_BATCH_NOT_FOUND)
	}
	return batch, nil
}

// MarkRowDone records one processed row against its batch.
func MarkRowDone(batchID string, failed bool) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	batch, ok := tracker.batches[batchID]
	if !ok {
		return
	}
	batch.Processed++
	if failed {
		batch.Failed++
	}
	if batch.Processed >= batch.Total {
		batch.Status = model.BatchCompleted
	} else {
		batch.Status = model.BatchProcessing
	}
	batch.UpdatedAt = time.Now().UTC()
}

func snapshot(batchID string) *model.ImportBatch {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()

	batch, ok := tracker.batches[batchID]
	if !ok {
		return nil
	}
	copied := *batch
	return &copied
}
