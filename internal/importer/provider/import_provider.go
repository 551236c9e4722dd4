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

package provider

import (
	"github.com/clinicdir/directory-data-service/internal/importer/service"
	"github.com/clinicdir/directory-data-service/internal/system/workers"
)

// ImportProviderInterface defines the interface for the import service provider.
type ImportProviderInterface interface {
	GetImportService() service.ImportServiceInterface
}

// ImportProvider is the default implementation of the ImportProviderInterface.
type ImportProvider struct{}

// NewImportProvider creates a new instance of ImportProvider.
func NewImportProvider() ImportProviderInterface {

	return &ImportProvider{}
}

// GetImportService returns an import service backed by the import worker queue.
func (ip *ImportProvider) GetImportService() service.ImportServiceInterface {

	return service.NewImportService(&workers.ImportWorkerQueue{})
}
