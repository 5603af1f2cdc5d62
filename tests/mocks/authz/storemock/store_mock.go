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

// Package storemock provides a mock implementation of the authorization store for testing.
package storemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/flowmart/flowmart/internal/authz/model"
)

// AuthorizationStoreInterfaceMock is a mock implementation of the AuthorizationStoreInterface.
type AuthorizationStoreInterfaceMock struct {
	mock.Mock
}

// GetAuthorizationRecord mocks the GetAuthorizationRecord method.
func (m *AuthorizationStoreInterfaceMock) GetAuthorizationRecord(userID, automationID, providerName string) (
	*model.AuthorizationRecord, error) {
	args := m.Called(userID, automationID, providerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorizationRecord), args.Error(1)
}

// UpsertAuthorizationRecord mocks the UpsertAuthorizationRecord method.
func (m *AuthorizationStoreInterfaceMock) UpsertAuthorizationRecord(record *model.AuthorizationRecord) (
	*model.AuthorizationRecord, error) {
	args := m.Called(record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorizationRecord), args.Error(1)
}

// RevokeAuthorization mocks the RevokeAuthorization method.
func (m *AuthorizationStoreInterfaceMock) RevokeAuthorization(userID, automationID, providerName string) error {
	args := m.Called(userID, automationID, providerName)
	return args.Error(0)
}
