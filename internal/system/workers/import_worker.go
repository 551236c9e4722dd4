package workers

import (
	"fmt"

	draftprovider "github.com/clinicdir/directory-data-service/internal/draft/provider"
	importmodel "github.com/clinicdir/directory-data-service/internal/importer/model"
	importservice "github.com/clinicdir/directory-data-service/internal/importer/service"
	"github.com/clinicdir/directory-data-service/internal/system/constants"
	"github.com/clinicdir/directory-data-service/internal/system/log"
)

var ImportQueue chan importmodel.ImportRow

// StartImportWorker starts the background consumer that turns queued import
// rows into drafts. Each row runs the same duplicate check as a direct
// submission would; a failed row is counted and skipped, never retried.
func StartImportWorker() {

	ImportQueue = make(chan importmodel.ImportRow, constants.DefaultQueueSize)

	go func() {
		for row := range ImportQueue {
			processImportRow(row)
		}
	}()
}

// EnqueueImportRow queues a row for processing.
func EnqueueImportRow(row importmodel.ImportRow) {
	if ImportQueue != nil {
		ImportQueue <- row
	}
}

// ImportWorkerQueue adapts the worker channel to the import service's queue
// interface.
type ImportWorkerQueue struct{}

// Enqueue hands the row to the import worker.
func (q *ImportWorkerQueue) Enqueue(row importmodel.ImportRow) {
	EnqueueImportRow(row)
}

func processImportRow(row importmodel.ImportRow) {

	draftService := draftprovider.NewDraftProvider().GetDraftService()
	draft, err := draftService.CreateDraft(row.Payload, row.Source)
	if err != nil {
		log.GetLogger().Error(fmt.Sprintf("Failed to create draft for import batch: %s", row.BatchID),
			log.Error(err))
		importservice.MarkRowDone(row.BatchID, true)
		return
	}

	log.GetLogger().Debug(fmt.Sprintf("Import batch %s created draft %s with status %s",
		row.BatchID, draft.DraftID, draft.Status))
	importservice.MarkRowDone(row.BatchID, false)
}
