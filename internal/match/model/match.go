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

// Confidence bands classify how trustworthy a match is.
const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"
)

// Strategy identifiers. The set is closed: each strategy has bespoke
// thresholds and tie-break behavior, so new ones are added here, not
// registered dynamically.
const (
	StrategyExternalIDExact   = "external_id_exact"
	StrategyFuzzyNameAddress  = "fuzzy_name_address"
	StrategyPhoneNormalized   = "phone_normalized"
	StrategyWebsiteDomain     = "website_domain"
	StrategyFuzzyNameLocation = "fuzzy_name_location"
)

// CandidateRecord is a submitted listing under duplicate test. It is a value
// type: a duplicate check never mutates it, and re-checking is a fresh
// computation.
type CandidateRecord struct {
	Name       string           `json:"name" bson:"name"`
	Address    string           `json:"address" bson:"address"`
	City       string           `json:"city" bson:"city"`
	State      string           `json:"state" bson:"state"`
	Phone      string           `json:"phone" bson:"phone"`
	Website    string           `json:"website" bson:"website"`
	Email      string           `json:"email" bson:"email"`
	Category   string           `json:"category" bson:"category"`
	PlaceID    string           `json:"place_id" bson:"place_id"`
	Latitude   *float64         `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude  *float64         `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Providers  []ProviderInput  `json:"providers,omitempty" bson:"providers,omitempty"`
	Procedures []ProcedureInput `json:"procedures,omitempty" bson:"procedures,omitempty"`
}

// ProviderInput is a practitioner attached to a submission.
type ProviderInput struct {
	Name  string `json:"name" bson:"name"`
	Title string `json:"title" bson:"title"`
}

// ProcedureInput is a service/procedure attached to a submission.
type ProcedureInput struct {
	Name     string `json:"name" bson:"name"`
	Category string `json:"category" bson:"category"`
}

// MatchResult is one strategy firing against one existing listing.
type MatchResult struct {
	ListingID int64   `json:"listing_id" bson:"listing_id"`
	Strategy  string  `json:"strategy" bson:"strategy"`
	RawScore  float64 `json:"raw_score" bson:"raw_score"`
	Band      string  `json:"confidence_band" bson:"confidence_band"`
	Reason    string  `json:"match_reason" bson:"match_reason"`
}

// MatchSummary is the aggregated duplicate-check outcome: the best surviving
// match plus ranked alternates.
type MatchSummary struct {
	HasDuplicates  bool          `json:"has_duplicates"`
	ConfidenceBand string        `json:"confidence_band,omitempty"`
	BestMatch      *MatchResult  `json:"best_match,omitempty"`
	Alternates     []MatchResult `json:"alternates,omitempty"`
}

// Results returns the full surviving match set, best first. Drafts persist
// this so reviewers can see alternates, not only the winner.
func (s MatchSummary) Results() []MatchResult {
	if s.BestMatch == nil {
		return nil
	}
	results := make([]MatchResult, 0, 1+len(s.Alternates))
	results = append(results, *s.BestMatch)
	results = append(results, s.Alternates...)
	return results
}
