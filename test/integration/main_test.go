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

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/clinicdir/directory-data-service/internal/system/config"
	"github.com/clinicdir/directory-data-service/internal/system/database/provider"
	"github.com/clinicdir/directory-data-service/internal/system/log"
	"github.com/clinicdir/directory-data-service/test/setup"
)

func TestMain(m *testing.M) {
	ctx := context.Background()
	os.Setenv("TEST_MODE", "true")

	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "DEBUG",
		},
	}
	config.OverrideDDSRuntime(conf)
	_ = log.Init("DEBUG")

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}

	provider.SetTestDB(pg.DB)
	if err := setup.CreateListingTables(pg.DB); err != nil {
		fmt.Println("Failed to create listing tables:", err)
		_ = pg.Container.Terminate(ctx)
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Terminate container manually after tests complete
	_ = pg.Container.Terminate(ctx)

	os.Exit(code)
}
