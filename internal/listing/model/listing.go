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

import "time"

// Listing is a canonical directory entry. The matching engine only reads it;
// ownership of the row lives in the listing store.
type Listing struct {
	ListingID  int64       `json:"listing_id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	Phone      string      `json:"phone"`
	Website    string      `json:"website"`
	Email      string      `json:"email"`
	Category   string      `json:"category"`
	PlaceID    string      `json:"place_id"`
	Latitude   *float64    `json:"latitude,omitempty"`
	Longitude  *float64    `json:"longitude,omitempty"`
	Providers  []Provider  `json:"providers,omitempty"`
	Procedures []Procedure `json:"procedures,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Provider is a practitioner attached to a listing.
type Provider struct {
	ProviderID int64  `json:"provider_id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

// Procedure is a service offered by a listing.
type Procedure struct {
	ProcedureID int64  `json:"procedure_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
}

// PoolFilter narrows the candidate pool fetched for duplicate scoring. Zero
// value means the full pool.
type PoolFilter struct {
	State string
	City  string
	Limit int
}
