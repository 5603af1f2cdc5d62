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

// Package provider provides the implementation for authorization operations.
package provider

import (
	"github.com/flowmart/flowmart/internal/authz/service"
)

// AuthorizationProviderInterface defines the interface for the authorization provider.
type AuthorizationProviderInterface interface {
	GetAuthorizationService() service.AuthorizationServiceInterface
}

// AuthorizationProvider is the default implementation of the AuthorizationProviderInterface.
type AuthorizationProvider struct{}

// NewAuthorizationProvider creates a new instance of AuthorizationProvider.
func NewAuthorizationProvider() AuthorizationProviderInterface {
	return &AuthorizationProvider{}
}

// GetAuthorizationService returns the authorization service instance.
func (ap *AuthorizationProvider) GetAuthorizationService() service.AuthorizationServiceInterface {
	return service.NewAuthorizationService()
}
