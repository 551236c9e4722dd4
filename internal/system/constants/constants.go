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

package constants

const (
	// ApiBasePath is the fixed base path for every exposed endpoint.
	ApiBasePath = "/api/v1"

	// DraftCollection is the document-store collection holding drafts.
	DraftCollection = "drafts"

	// DefaultQueueSize buffers bulk-import rows awaiting draft creation.
	DefaultQueueSize = 100
)

// Draft submission sources.
const (
	SourcePartnerSubmission = "partner_submission"
	SourceBulkImport        = "bulk_import"
)
