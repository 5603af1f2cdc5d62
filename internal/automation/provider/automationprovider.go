/*
 * Copyright (c) 2025, Flowmart (https://flowmart.io).
 *
 * Flowmart licenses this file to you under the Apache License,
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

// Package provider provides the automation service instance.
package provider

import "github.com/flowmart/flowmart/internal/automation/service"

// AutomationProviderInterface defines the interface for the automation provider.
type AutomationProviderInterface interface {
	GetAutomationService() service.AutomationServiceInterface
}

// AutomationProvider is the default implementation of the AutomationProviderInterface.
type AutomationProvider struct{}

// NewAutomationProvider creates a new instance of AutomationProvider.
func NewAutomationProvider() AutomationProviderInterface {
	return &AutomationProvider{}
}

// GetAutomationService returns the automation service instance.
func (ap *AutomationProvider) GetAutomationService() service.AutomationServiceInterface {
	return service.NewAutomationService()
}
