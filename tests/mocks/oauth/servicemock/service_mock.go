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

// Package servicemock provides a mock implementation of the OAuth service for testing.
package servicemock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

// OAuthServiceInterfaceMock is a mock implementation of OAuthServiceInterface.
type OAuthServiceInterfaceMock struct {
	mock.Mock
}

// BuildConsentURL mocks the BuildConsentURL method.
func (m *OAuthServiceInterfaceMock) BuildConsentURL(automationID, userID string,
	services []scope.ServiceName) (string, *serviceerror.ServiceError) {
	args := m.Called(automationID, userID, services)
	return args.String(0), svcError(args.Get(1))
}

// ExchangeCodeForToken mocks the ExchangeCodeForToken method.
func (m *OAuthServiceInterfaceMock) ExchangeCodeForToken(ctx context.Context, code string) (
	*oauth2.Token, *serviceerror.ServiceError) {
	args := m.Called(ctx, code)
	return token(args.Get(0)), svcError(args.Get(1))
}

// RefreshAccessToken mocks the RefreshAccessToken method.
func (m *OAuthServiceInterfaceMock) RefreshAccessToken(ctx context.Context, refreshToken string) (
	*oauth2.Token, *serviceerror.ServiceError) {
	args := m.Called(ctx, refreshToken)
	return token(args.Get(0)), svcError(args.Get(1))
}

// IsTokenExpiring mocks the IsTokenExpiring method.
func (m *OAuthServiceInterfaceMock) IsTokenExpiring(expiry time.Time) bool {
	args := m.Called(expiry)
	return args.Bool(0)
}

func token(value interface{}) *oauth2.Token {
	if value == nil {
		return nil
	}
	return value.(*oauth2.Token)
}

func svcError(value interface{}) *serviceerror.ServiceError {
	if value == nil {
		return nil
	}
	return value.(*serviceerror.ServiceError)
}
