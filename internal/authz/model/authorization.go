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

// Package model defines the data structures for authorization state.
package model

import (
	"time"

	"github.com/flowmart/flowmart/internal/scope"
)

// ProviderGoogle is the provider key under which Google authorization state is recorded.
const ProviderGoogle = "google"

// AuthorizationRecord holds the authorization state for one (user, automation, provider) key.
//
// GrantedScopes only grows across upserts; it shrinks solely through an explicit revoke.
// CredentialHandles is replaced wholesale whenever new handles are issued.
type AuthorizationRecord struct {
	UserID            string            `json:"user_id"`
	AutomationID      string            `json:"automation_id"`
	Provider          string            `json:"provider"`
	GrantedScopes     []string          `json:"granted_scopes"`
	CredentialHandles map[string]string `json:"credential_handles"`
	AccessToken       string            `json:"-"`
	RefreshToken      string            `json:"-"`
	TokenExpiry       time.Time         `json:"token_expiry"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// AccessCheckResult is the outcome of an incremental authorization check.
//
// HasAllScopes being false is a normal control-flow outcome, not an error:
// callers redirect the user to AuthorizationURL to grant the missing services.
type AccessCheckResult struct {
	HasAllScopes     bool                `json:"has_all_scopes"`
	MissingServices  []scope.ServiceName `json:"missing_services"`
	AuthorizationURL string              `json:"authorization_url,omitempty"`
}
