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

package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment yaml, expands environment variable
// references, and unmarshals it into a Config.
func LoadConfig(ddsHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(ddsHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyMatchingDefaults(&cfg)
	return &cfg, nil
}

// applyMatchingDefaults fills in the incident-remediation defaults for any
// matching knob left unset.
func applyMatchingDefaults(cfg *Config) {
	if cfg.Matching.MaxPlausibleKm <= 0 {
		cfg.Matching.MaxPlausibleKm = 50
	}
	if cfg.Matching.MaxAlternates <= 0 {
		cfg.Matching.MaxAlternates = 5
	}
	if cfg.Matching.NameAddressFloor <= 0 {
		cfg.Matching.NameAddressFloor = 0.75
	}
	if cfg.Matching.NameLocationFloor <= 0 {
		cfg.Matching.NameLocationFloor = 0.70
	}
}
