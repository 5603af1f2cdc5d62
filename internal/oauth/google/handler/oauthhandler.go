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

// Package handler provides the HTTP handlers for the Google OAuth consent flow.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	authzmodel "github.com/flowmart/flowmart/internal/authz/model"
	authzprovider "github.com/flowmart/flowmart/internal/authz/provider"
	oauthgoogle "github.com/flowmart/flowmart/internal/oauth/google"
	"github.com/flowmart/flowmart/internal/oauth/google/provider"
	"github.com/flowmart/flowmart/internal/scope"
	sysconst "github.com/flowmart/flowmart/internal/system/constants"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	"github.com/flowmart/flowmart/internal/system/utils"
)

const loggerComponentName = "OAuthHandler"

type callbackResponse struct {
	Status        string   `json:"status"`
	AutomationID  string   `json:"automation_id,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
	GrantedScopes []string `json:"granted_scopes"`
	Persisted     bool     `json:"persisted"`
}

// OAuthHandler handles the Google OAuth consent flow API requests.
type OAuthHandler struct{}

// HandleAuthorizeGetRequest redirects the user to the Google consent screen
// for the requested services. An empty services parameter requests consent
// for the full catalog.
func (oh *OAuthHandler) HandleAuthorizeGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	query := r.URL.Query()
	automationID := query.Get("automation_id")
	userID := query.Get("user_id")

	var services []scope.ServiceName
	if servicesParam := query.Get("services"); servicesParam != "" {
		for _, name := range strings.Split(servicesParam, ",") {
			if name = strings.TrimSpace(name); name != "" {
				services = append(services, scope.ServiceName(name))
			}
		}
	}

	oauthProvider := provider.NewOAuthProvider()
	oauthService := oauthProvider.GetOAuthService()

	consentURL, svcErr := oauthService.BuildConsentURL(automationID, userID, services)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	logger.Debug("Redirecting to consent screen", log.String("automationID", automationID))
	http.Redirect(w, r, consentURL, http.StatusFound)
}

// HandleCallbackGetRequest completes the consent flow: it exchanges the
// authorization code for tokens and records the granted scopes.
//
// A state that no longer decodes still completes the exchange so the code is
// not wasted, but nothing is persisted without the automation context.
func (oh *OAuthHandler) HandleCallbackGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	query := r.URL.Query()
	code := query.Get("code")
	if code == "" {
		utils.WriteJSONError(w, oauthgoogle.ErrorMissingAuthorizationCode.Code,
			oauthgoogle.ErrorMissingAuthorizationCode.ErrorDescription, http.StatusBadRequest)
		return
	}

	state, stateErr := oauthgoogle.DecodeConsentState(query.Get("state"))
	if stateErr != nil {
		logger.Warn("Consent state did not decode", log.Error(stateErr))
	}

	oauthProvider := provider.NewOAuthProvider()
	oauthService := oauthProvider.GetOAuthService()

	token, svcErr := oauthService.ExchangeCodeForToken(r.Context(), code)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	grantedScopes := []string{}
	if scopeExtra, ok := token.Extra("scope").(string); ok {
		grantedScopes = utils.ParseStringArray(scopeExtra, " ")
	}

	response := callbackResponse{
		Status:        "granted",
		GrantedScopes: grantedScopes,
	}

	if stateErr == nil && state.AutomationID != "" && state.UserID != "" {
		authzService := authzprovider.NewAuthorizationProvider().GetAuthorizationService()
		record, svcErr := authzService.RecordGrant(&authzmodel.AuthorizationRecord{
			UserID:        state.UserID,
			AutomationID:  state.AutomationID,
			Provider:      authzmodel.ProviderGoogle,
			GrantedScopes: grantedScopes,
			AccessToken:   token.AccessToken,
			RefreshToken:  token.RefreshToken,
			TokenExpiry:   token.Expiry,
		})
		if svcErr != nil {
			writeServiceError(w, svcErr)
			return
		}
		response.AutomationID = state.AutomationID
		response.UserID = state.UserID
		response.GrantedScopes = record.GrantedScopes
		response.Persisted = true
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Consent callback handled", log.String("automationID", response.AutomationID),
		log.String("accessToken", log.MaskString(token.AccessToken)))
}

// writeServiceError maps a service error to the HTTP response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	}
	utils.WriteJSONError(w, svcErr.Code, svcErr.ErrorDescription, statusCode)
}
