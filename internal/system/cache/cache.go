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

// Package cache provides a small in-process TTL cache. It backs the
// geocode client so a draft edited several times in a review session
// does not re-resolve the same address on every update.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   interface{}
	expires time.Time
}

// Cache is a TTL keyed cache safe for concurrent use. Expired entries
// are dropped lazily on read; there is no background sweeper.
type Cache struct {
	entries map[string]entry
	mutex   sync.RWMutex
	ttl     time.Duration
}

// NewCache creates a cache whose entries live for ttl after each Set.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Set stores a value under key, resetting its expiry.
func (c *Cache) Set(key string, value interface{}) {

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry{
		value:   value,
		expires: time.Now().Add(c.ttl),
	}
}

// Get returns the value for key, or false when absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, found := c.entries[key]
	if !found || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Delete removes an entry.
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
}
