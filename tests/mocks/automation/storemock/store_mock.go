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

// Package storemock provides a mock implementation of the automation store for testing.
package storemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/flowmart/flowmart/internal/automation/model"
)

// AutomationStoreInterfaceMock is a mock implementation of AutomationStoreInterface.
type AutomationStoreInterfaceMock struct {
	mock.Mock
}

// CreateAutomation mocks the CreateAutomation method.
func (m *AutomationStoreInterfaceMock) CreateAutomation(automation *model.Automation) error {
	args := m.Called(automation)
	return args.Error(0)
}

// GetAutomationList mocks the GetAutomationList method.
func (m *AutomationStoreInterfaceMock) GetAutomationList() ([]model.BasicAutomation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BasicAutomation), args.Error(1)
}

// GetAutomation mocks the GetAutomation method.
func (m *AutomationStoreInterfaceMock) GetAutomation(automationID string) (*model.Automation, error) {
	args := m.Called(automationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Automation), args.Error(1)
}

// DeleteAutomation mocks the DeleteAutomation method.
func (m *AutomationStoreInterfaceMock) DeleteAutomation(automationID string) error {
	args := m.Called(automationID)
	return args.Error(0)
}
