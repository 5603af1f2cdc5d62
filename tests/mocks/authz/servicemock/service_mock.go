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

// Package servicemock provides a mock implementation of the authorization service for testing.
package servicemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/flowmart/flowmart/internal/authz/model"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

// AuthorizationServiceInterfaceMock is a mock implementation of AuthorizationServiceInterface.
type AuthorizationServiceInterfaceMock struct {
	mock.Mock
}

// CheckAccess mocks the CheckAccess method.
func (m *AuthorizationServiceInterfaceMock) CheckAccess(userID, automationID string, workflowDoc []byte) (
	*model.AccessCheckResult, *serviceerror.ServiceError) {
	args := m.Called(userID, automationID, workflowDoc)
	return accessResult(args.Get(0)), svcError(args.Get(1))
}

// CheckAccessForServices mocks the CheckAccessForServices method.
func (m *AuthorizationServiceInterfaceMock) CheckAccessForServices(userID, automationID string,
	required []scope.ServiceName) (*model.AccessCheckResult, *serviceerror.ServiceError) {
	args := m.Called(userID, automationID, required)
	return accessResult(args.Get(0)), svcError(args.Get(1))
}

// GetAuthorizationRecord mocks the GetAuthorizationRecord method.
func (m *AuthorizationServiceInterfaceMock) GetAuthorizationRecord(userID, automationID string) (
	*model.AuthorizationRecord, *serviceerror.ServiceError) {
	args := m.Called(userID, automationID)
	return authzRecord(args.Get(0)), svcError(args.Get(1))
}

// RecordGrant mocks the RecordGrant method.
func (m *AuthorizationServiceInterfaceMock) RecordGrant(record *model.AuthorizationRecord) (
	*model.AuthorizationRecord, *serviceerror.ServiceError) {
	args := m.Called(record)
	return authzRecord(args.Get(0)), svcError(args.Get(1))
}

// RevokeAuthorization mocks the RevokeAuthorization method.
func (m *AuthorizationServiceInterfaceMock) RevokeAuthorization(userID, automationID string) *serviceerror.ServiceError {
	args := m.Called(userID, automationID)
	return svcError(args.Get(0))
}

// BuildAuthorizationURL mocks the BuildAuthorizationURL method.
func (m *AuthorizationServiceInterfaceMock) BuildAuthorizationURL(automationID, userID string,
	services []scope.ServiceName) (string, *serviceerror.ServiceError) {
	args := m.Called(automationID, userID, services)
	return args.String(0), svcError(args.Get(1))
}

func accessResult(value interface{}) *model.AccessCheckResult {
	if value == nil {
		return nil
	}
	return value.(*model.AccessCheckResult)
}

func authzRecord(value interface{}) *model.AuthorizationRecord {
	if value == nil {
		return nil
	}
	return value.(*model.AuthorizationRecord)
}

func svcError(value interface{}) *serviceerror.ServiceError {
	if value == nil {
		return nil
	}
	return value.(*serviceerror.ServiceError)
}
