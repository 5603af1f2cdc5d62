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

package google

import (
	"time"

	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

// tokenExpiryWindow is how close to expiry an access token may get before it is refreshed.
const tokenExpiryWindow = 5 * time.Minute

// Client errors for Google OAuth operations.
var (
	// ErrorInvalidState is the error returned when the OAuth state parameter cannot be decoded.
	ErrorInvalidState = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OAUTH-1001",
		Error:            "Invalid state parameter",
		ErrorDescription: "The OAuth state parameter could not be decoded",
	}
	// ErrorMissingAuthorizationCode is the error returned when the callback carries no code.
	ErrorMissingAuthorizationCode = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OAUTH-1002",
		Error:            "Missing authorization code",
		ErrorDescription: "The OAuth callback did not include an authorization code",
	}
	// ErrorMissingRefreshToken is the error returned when a refresh is attempted without a refresh token.
	ErrorMissingRefreshToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OAUTH-1003",
		Error:            "Missing refresh token",
		ErrorDescription: "No refresh token is available for the requested authorization",
	}
)

// Server errors for Google OAuth operations.
var (
	// ErrorTokenExchangeFailure is the error returned when the provider rejects a code exchange.
	ErrorTokenExchangeFailure = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "OAUTH-5000",
		Error:            "Token exchange failed",
		ErrorDescription: "The authorization code could not be exchanged for tokens",
	}
	// ErrorTokenRefreshFailure is the error returned when the provider rejects a token refresh.
	ErrorTokenRefreshFailure = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "OAUTH-5001",
		Error:            "Token refresh failed",
		ErrorDescription: "The access token could not be refreshed",
	}
)
