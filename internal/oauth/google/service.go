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

// Package google provides the Google OAuth consent and token exchange flows.
package google

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/config"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
)

const loggerComponentName = "GoogleOAuthService"

// OAuthServiceInterface defines the interface for the Google OAuth flows.
type OAuthServiceInterface interface {
	BuildConsentURL(automationID, userID string, services []scope.ServiceName) (
		string, *serviceerror.ServiceError)
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, *serviceerror.ServiceError)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*oauth2.Token, *serviceerror.ServiceError)
	IsTokenExpiring(expiry time.Time) bool
}

// OAuthService is the default implementation of the OAuthServiceInterface.
type OAuthService struct {
	OAuthConfig *oauth2.Config
	Catalog     *scope.Catalog
}

// NewOAuthService creates a new instance of OAuthService from the runtime configuration.
func NewOAuthService() OAuthServiceInterface {
	googleConfig := config.GetFlowmartRuntime().Config.OAuth.Google
	return &OAuthService{
		OAuthConfig: &oauth2.Config{
			ClientID:     googleConfig.ClientID,
			ClientSecret: googleConfig.ClientSecret,
			RedirectURL:  googleConfig.RedirectURI,
			Endpoint:     oauthgoogle.Endpoint,
		},
		Catalog: scope.GetDefaultCatalog(),
	}
}

// BuildConsentURL builds the provider consent URL for the given services.
// An empty service list requests the full approved catalog. Offline access with a
// forced approval prompt is always requested so a refresh token is issued, and
// include_granted_scopes keeps previously granted scopes on the new token so an
// incremental consent never narrows the authorization.
func (os *OAuthService) BuildConsentURL(automationID, userID string,
	services []scope.ServiceName) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	state, err := EncodeConsentState(ConsentState{
		AutomationID: automationID,
		UserID:       userID,
	})
	if err != nil {
		logger.Error("Failed to encode consent state", log.Error(err))
		return "", serviceerror.CustomServiceError(ErrorInvalidState, err.Error())
	}

	var scopes []string
	if len(services) == 0 {
		scopes = os.Catalog.AllScopes()
	} else {
		scopes = os.Catalog.ScopesForServices(services)
	}

	consentConfig := *os.OAuthConfig
	consentConfig.Scopes = scopes

	return consentConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true")), nil
}

// ExchangeCodeForToken exchanges the authorization code for an access and refresh token pair.
// Exchange failures are surfaced, not retried.
func (os *OAuthService) ExchangeCodeForToken(ctx context.Context, code string) (
	*oauth2.Token, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if code == "" {
		return nil, &ErrorMissingAuthorizationCode
	}

	token, err := os.OAuthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", log.Error(err))
		return nil, &ErrorTokenExchangeFailure
	}

	return token, nil
}

// RefreshAccessToken obtains a fresh access token using the stored refresh token.
func (os *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (
	*oauth2.Token, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if refreshToken == "" {
		return nil, &ErrorMissingRefreshToken
	}

	source := os.OAuthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		logger.Error("Failed to refresh access token", log.Error(err))
		return nil, &ErrorTokenRefreshFailure
	}

	return token, nil
}

// IsTokenExpiring reports whether the access token is expired or inside the refresh window.
func (os *OAuthService) IsTokenExpiring(expiry time.Time) bool {
	if expiry.IsZero() {
		return true
	}
	return time.Until(expiry) < tokenExpiryWindow
}
