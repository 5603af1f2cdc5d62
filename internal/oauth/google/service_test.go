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
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

type OAuthServiceTestSuite struct {
	suite.Suite
	service *OAuthService
}

func TestOAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthServiceTestSuite))
}

func (suite *OAuthServiceTestSuite) SetupTest() {
	suite.service = &OAuthService{
		OAuthConfig: &oauth2.Config{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURL:  "https://flowmart.io/oauth/callback",
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
		Catalog: scope.GetDefaultCatalog(),
	}
}

func (suite *OAuthServiceTestSuite) TestConsentStateRoundTrip() {
	encoded, err := EncodeConsentState(ConsentState{
		AutomationID: "auto-1",
		UserID:       "user-1",
	})
	assert.NoError(suite.T(), err)

	decoded, err := DecodeConsentState(encoded)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "auto-1", decoded.AutomationID)
	assert.Equal(suite.T(), "user-1", decoded.UserID)
}

func (suite *OAuthServiceTestSuite) TestDecodeConsentState_Malformed() {
	testCases := []struct {
		name    string
		encoded string
	}{
		{
			name:    "Not base64",
			encoded: "%%%not-base64%%%",
		},
		{
			name:    "Base64 but not JSON",
			encoded: "bm90LWpzb24=",
		},
		{
			name:    "Empty",
			encoded: "",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			decoded, err := DecodeConsentState(tc.encoded)
			assert.Error(t, err)
			assert.Empty(t, decoded.AutomationID)
			assert.Empty(t, decoded.UserID)
		})
	}
}

func (suite *OAuthServiceTestSuite) TestBuildConsentURL() {
	rawURL, svcErr := suite.service.BuildConsentURL("auto-1", "user-1",
		[]scope.ServiceName{scope.ServiceDrive})
	assert.Nil(suite.T(), svcErr)

	parsed, err := url.Parse(rawURL)
	assert.NoError(suite.T(), err)
	query := parsed.Query()

	assert.Equal(suite.T(), "test-client-id", query.Get("client_id"))
	assert.Equal(suite.T(), "offline", query.Get("access_type"))
	assert.Equal(suite.T(), "force", query.Get("approval_prompt"))
	assert.Equal(suite.T(), "true", query.Get("include_granted_scopes"))

	scopes := strings.Split(query.Get("scope"), " ")
	assert.Contains(suite.T(), scopes, scope.ScopeOpenID)
	assert.Contains(suite.T(), scopes, scope.ScopeDriveFile)
	assert.NotContains(suite.T(), scopes, scope.ScopeSpreadsheets)

	decoded, err := DecodeConsentState(query.Get("state"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "auto-1", decoded.AutomationID)
	assert.Equal(suite.T(), "user-1", decoded.UserID)
}

func (suite *OAuthServiceTestSuite) TestBuildConsentURL_FullCatalogWhenNoServices() {
	rawURL, svcErr := suite.service.BuildConsentURL("auto-1", "user-1", nil)
	assert.Nil(suite.T(), svcErr)

	parsed, err := url.Parse(rawURL)
	assert.NoError(suite.T(), err)

	scopes := strings.Split(parsed.Query().Get("scope"), " ")
	for _, uri := range suite.service.Catalog.AllScopes() {
		assert.Contains(suite.T(), scopes, uri)
	}
}

func (suite *OAuthServiceTestSuite) TestExchangeCodeForToken() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(suite.T(), r.ParseForm())
		assert.Equal(suite.T(), "test-auth-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "test-access-token",
			"refresh_token": "test-refresh-token",
			"token_type": "Bearer",
			"expires_in": 3600,
			"scope": "openid https://www.googleapis.com/auth/drive.file"
		}`))
	}))
	defer server.Close()

	suite.service.OAuthConfig.Endpoint = oauth2.Endpoint{TokenURL: server.URL}

	token, svcErr := suite.service.ExchangeCodeForToken(context.Background(), "test-auth-code")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "test-access-token", token.AccessToken)
	assert.Equal(suite.T(), "test-refresh-token", token.RefreshToken)
	assert.Equal(suite.T(), "openid https://www.googleapis.com/auth/drive.file",
		token.Extra("scope"))
}

func (suite *OAuthServiceTestSuite) TestExchangeCodeForToken_ProviderRejection() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer server.Close()

	suite.service.OAuthConfig.Endpoint = oauth2.Endpoint{TokenURL: server.URL}

	token, svcErr := suite.service.ExchangeCodeForToken(context.Background(), "bad-code")
	assert.Nil(suite.T(), token)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), ErrorTokenExchangeFailure.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, svcErr.Type)
}

func (suite *OAuthServiceTestSuite) TestExchangeCodeForToken_EmptyCode() {
	token, svcErr := suite.service.ExchangeCodeForToken(context.Background(), "")
	assert.Nil(suite.T(), token)
	assert.Equal(suite.T(), ErrorMissingAuthorizationCode.Code, svcErr.Code)
}

func (suite *OAuthServiceTestSuite) TestRefreshAccessToken() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(suite.T(), r.ParseForm())
		assert.Equal(suite.T(), "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(suite.T(), "test-refresh-token", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "refreshed-access-token",
			"token_type": "Bearer",
			"expires_in": 3600
		}`))
	}))
	defer server.Close()

	suite.service.OAuthConfig.Endpoint = oauth2.Endpoint{TokenURL: server.URL}

	token, svcErr := suite.service.RefreshAccessToken(context.Background(), "test-refresh-token")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "refreshed-access-token", token.AccessToken)
}

func (suite *OAuthServiceTestSuite) TestRefreshAccessToken_MissingRefreshToken() {
	token, svcErr := suite.service.RefreshAccessToken(context.Background(), "")
	assert.Nil(suite.T(), token)
	assert.Equal(suite.T(), ErrorMissingRefreshToken.Code, svcErr.Code)
}

func (suite *OAuthServiceTestSuite) TestIsTokenExpiring() {
	testCases := []struct {
		name     string
		expiry   time.Time
		expected bool
	}{
		{
			name:     "Zero expiry",
			expiry:   time.Time{},
			expected: true,
		},
		{
			name:     "Already expired",
			expiry:   time.Now().Add(-time.Hour),
			expected: true,
		},
		{
			name:     "Inside the refresh window",
			expiry:   time.Now().Add(2 * time.Minute),
			expected: true,
		},
		{
			name:     "Comfortably fresh",
			expiry:   time.Now().Add(time.Hour),
			expected: false,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, suite.service.IsTokenExpiring(tc.expiry))
		})
	}
}
