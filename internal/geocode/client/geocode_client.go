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

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	matchmodel "github.com/clinicdir/directory-data-service/internal/match/model"
	"github.com/clinicdir/directory-data-service/internal/match/normalize"
	"github.com/clinicdir/directory-data-service/internal/system/cache"
	"github.com/clinicdir/directory-data-service/internal/system/config"
	errors2 "github.com/clinicdir/directory-data-service/internal/system/errors"
)

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoProviderInterface looks up coordinates for a candidate record before
// scoring. A nil result with a nil error means the provider could not place
// the record; callers must tolerate absence.
type GeoProviderInterface interface {
	LookupCoordinates(candidate matchmodel.CandidateRecord) (*Coordinates, error)
}

// GeocodeClient is an HTTP GeoProviderInterface implementation with a TTL
// cache so repeated draft updates do not re-query the provider.
type GeocodeClient struct {
	endpoint   string
	httpClient *http.Client
	cache      *cache.Cache
}

// NewGeocodeClient creates a geocode client from configuration. An empty
// endpoint disables enrichment entirely.
func NewGeocodeClient(cfg config.GeocodeConfig) *GeocodeClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ttl := time.Duration(cfg.CacheTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &GeocodeClient{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache.NewCache(ttl),
	}
}

// LookupCoordinates resolves the candidate's address to coordinates.
func (c *GeocodeClient) LookupCoordinates(candidate matchmodel.CandidateRecord) (*Coordinates, error) {
	if c.endpoint == "" {
		return nil, nil
	}

	address := strings.TrimSpace(strings.Join([]string{
		normalize.Address(candidate.Address),
		normalize.Address(candidate.City),
		normalize.Address(candidate.State),
	}, " "))
	if address == "" {
		return nil, nil
	}

	if cached, found := c.cache.Get(address); found {
		coords := cached.(Coordinates)
		return &coords, nil
	}

	lookupURL := fmt.Sprintf("%s?address=%s", c.endpoint, url.QueryEscape(address))
	resp, err := c.httpClient.Get(lookupURL)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GEOCODE_LOOKUP, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors2.NewServerError(errors2.GEOCODE_LOOKUP,
			fmt.Errorf("geocode provider returned status %d", resp.StatusCode))
	}

	var coords Coordinates
	if err := json.NewDecoder(resp.Body).Decode(&coords); err != nil {
		return nil, errors2.NewServerError(errors2.GEOCODE_LOOKUP, err)
	}

	c.cache.Set(address, coords)
	return &coords, nil
}
