/*
 * Copyright (c) 2025-2026, ClinicDir, Inc. (https://clinicdir.com).
 *
 * ClinicDir, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

import (
	"time"

	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
)

// Draft statuses. Transitions are monotonic: draft -> pending_review ->
// exactly one terminal state; terminal states never transition again.
const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
	StatusMerged        = "merged"
)

// IsTerminal reports whether a status permits no further transitions.
func IsTerminal(status string) bool {
	switch status {
	case StatusApproved, StatusRejected, StatusMerged:
		return true
	}
	return false
}

// Draft is a submitted, not-yet-canonical record moving through review. The
// payload is frozen the moment the draft reaches a terminal state; the full
// duplicate match set computed at pending_review entry is retained so
// reviewers can see alternates, not only the winner.
type Draft struct {
	DraftID            string                   `json:"draft_id" bson:"draft_id"`
	Status             string                   `json:"status" bson:"status"`
	Source             string                   `json:"source" bson:"source"`
	Payload            matchmodel.CandidateRecord `json:"payload" bson:"payload"`
	DuplicateMatches   []matchmodel.MatchResult `json:"duplicate_matches" bson:"duplicate_matches"`
	ReviewerNotes      string                   `json:"reviewer_notes,omitempty" bson:"reviewer_notes,omitempty"`
	DuplicateListingID *int64                   `json:"duplicate_listing_id,omitempty" bson:"duplicate_listing_id,omitempty"`
	CreatedAt          time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at" bson:"updated_at"`
}
