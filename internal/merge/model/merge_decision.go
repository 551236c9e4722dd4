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

// Merge actions recorded per resolved field or child entity.
const (
	ActionKeptExisting         = "kept_existing"
	ActionFilledFromSubmission = "filled_from_submission"
	ActionChildUpdated         = "child_updated"
	ActionChildAdded           = "child_added"
)

// MergeDecision is one field-level or child-level resolution directive
// produced while merging a submission into an existing listing.
type MergeDecision struct {
	Field  string `json:"field"`
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
}
