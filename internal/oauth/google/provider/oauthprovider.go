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

// Package provider provides the OAuth service instance.
package provider

import oauthgoogle "github.com/flowmart/flowmart/internal/oauth/google"

// OAuthProviderInterface defines the interface for the OAuth provider.
type OAuthProviderInterface interface {
	GetOAuthService() oauthgoogle.OAuthServiceInterface
}

// OAuthProvider is the default implementation of the OAuthProviderInterface.
type OAuthProvider struct{}

// NewOAuthProvider creates a new instance of OAuthProvider.
func NewOAuthProvider() OAuthProviderInterface {
	return &OAuthProvider{}
}

// GetOAuthService returns the OAuth service instance.
func (op *OAuthProvider) GetOAuthService() oauthgoogle.OAuthServiceInterface {
	return oauthgoogle.NewOAuthService()
}
