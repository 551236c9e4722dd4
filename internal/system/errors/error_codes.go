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

package errors

const errorPrefix = "DDS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	ADD_LISTING = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while creating listing.",
	}

	GET_LISTING = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching listing(s).",
	}

	UPDATE_LISTING = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while updating listing.",
	}

	LIST_CANDIDATE_POOL = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while fetching the candidate listing pool.",
	}

	ADD_DRAFT = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while creating draft.",
	}

	GET_DRAFT = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching draft.",
	}

	UPDATE_DRAFT = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while updating draft.",
	}

	TRANSITION_DRAFT = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while transitioning draft.",
	}

	GEOCODE_LOOKUP = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while looking up coordinates.",
	}

	ENQUEUE_IMPORT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while enqueueing import batch.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:        errorPrefix + "10001",
		Message:     "Bad request.",
		Description: "The request body is malformed.",
	}

	DRAFT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "10002",
		Message:     "Draft not found.",
		Description: "No draft exists for the given id.",
	}

	LISTING_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "10003",
		Message:     "Listing not found.",
		Description: "No listing exists for the given id.",
	}

	DRAFT_NOT_PENDING = ErrorMessage{
		Code:        errorPrefix + "10004",
		Message:     "Draft is not pending review.",
		Description: "The requested transition is only permitted from the pending_review state.",
	}

	DRAFT_TRANSITION_LOST = ErrorMessage{
		Code:        errorPrefix + "10005",
		Message:     "Draft transition conflict.",
		Description: "Another transition was applied concurrently. Refetch the draft for its current status.",
	}

	DRAFT_INCOMPLETE_FOR_APPROVAL = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Draft payload is incomplete for approval.",
	}

	DRAFT_PAYLOAD_FROZEN = ErrorMessage{
		Code:        errorPrefix + "10007",
		Message:     "Draft payload is frozen.",
		Description: "The draft has reached a terminal state. Submit a new draft instead.",
	}

	MERGE_TARGET_REQUIRED = ErrorMessage{
		Code:        errorPrefix + "10008",
		Message:     "Merge target is required.",
		Description: "A merge transition requires the id of the existing listing to merge into.",
	}

	IMPORT_BATCH_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "10009",
		Message:     "Import batch not found.",
		Description: "No import batch exists for the given id.",
	}

	IMPORT_EMPTY = ErrorMessage{
		Code:        errorPrefix + "10010",
		Message:     "Import batch is empty.",
		Description: "The import request contained no rows.",
	}
)
