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

// Package servicemock provides a mock implementation of the automation service for testing.
package servicemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/flowmart/flowmart/internal/automation/model"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

// AutomationServiceInterfaceMock is a mock implementation of AutomationServiceInterface.
type AutomationServiceInterfaceMock struct {
	mock.Mock
}

// CreateAutomation mocks the CreateAutomation method.
func (m *AutomationServiceInterfaceMock) CreateAutomation(name, description string, workflowDoc []byte) (
	*model.Automation, *serviceerror.ServiceError) {
	args := m.Called(name, description, workflowDoc)
	var automation *model.Automation
	if args.Get(0) != nil {
		automation = args.Get(0).(*model.Automation)
	}
	var svcErr *serviceerror.ServiceError
	if args.Get(1) != nil {
		svcErr = args.Get(1).(*serviceerror.ServiceError)
	}
	return automation, svcErr
}

// GetAutomationList mocks the GetAutomationList method.
func (m *AutomationServiceInterfaceMock) GetAutomationList() (
	[]model.BasicAutomation, *serviceerror.ServiceError) {
	args := m.Called()
	var automations []model.BasicAutomation
	if args.Get(0) != nil {
		automations = args.Get(0).([]model.BasicAutomation)
	}
	var svcErr *serviceerror.ServiceError
	if args.Get(1) != nil {
		svcErr = args.Get(1).(*serviceerror.ServiceError)
	}
	return automations, svcErr
}

// GetAutomation mocks the GetAutomation method.
func (m *AutomationServiceInterfaceMock) GetAutomation(automationID string) (
	*model.Automation, *serviceerror.ServiceError) {
	args := m.Called(automationID)
	var automation *model.Automation
	if args.Get(0) != nil {
		automation = args.Get(0).(*model.Automation)
	}
	var svcErr *serviceerror.ServiceError
	if args.Get(1) != nil {
		svcErr = args.Get(1).(*serviceerror.ServiceError)
	}
	return automation, svcErr
}

// DeleteAutomation mocks the DeleteAutomation method.
func (m *AutomationServiceInterfaceMock) DeleteAutomation(automationID string) *serviceerror.ServiceError {
	args := m.Called(automationID)
	if args.Get(0) != nil {
		return args.Get(0).(*serviceerror.ServiceError)
	}
	return nil
}
