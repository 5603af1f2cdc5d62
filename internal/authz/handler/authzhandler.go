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

// Package handler provides the HTTP handlers for authorization checks.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/flowmart/flowmart/internal/authz/constants"
	"github.com/flowmart/flowmart/internal/authz/provider"
	sysconst "github.com/flowmart/flowmart/internal/system/constants"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	"github.com/flowmart/flowmart/internal/system/utils"
)

const loggerComponentName = "AuthorizationHandler"

// AuthorizationHandler handles the authorization check API requests.
type AuthorizationHandler struct{}

type accessCheckRequest struct {
	UserID       string          `json:"user_id"`
	AutomationID string          `json:"automation_id"`
	Workflow     json.RawMessage `json:"workflow,omitempty"`
}

type revokeRequest struct {
	UserID       string `json:"user_id"`
	AutomationID string `json:"automation_id"`
}

// HandleAccessCheckPostRequest handles a request to check whether a user has
// granted every scope a workflow requires.
func (ah *AuthorizationHandler) HandleAccessCheckPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var request accessCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSONError(w, constants.ErrorMalformedWorkflow.Code,
			"Failed to parse the request body", http.StatusBadRequest)
		return
	}

	authzProvider := provider.NewAuthorizationProvider()
	authzService := authzProvider.GetAuthorizationService()

	result, svcErr := authzService.CheckAccess(request.UserID, request.AutomationID, request.Workflow)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Access check handled", log.String("automationID", request.AutomationID))
}

// HandleRevokePostRequest handles a request to revoke a user's authorization
// for an automation.
func (ah *AuthorizationHandler) HandleRevokePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var request revokeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSONError(w, constants.ErrorInvalidUserID.Code,
			"Failed to parse the request body", http.StatusBadRequest)
		return
	}

	authzProvider := provider.NewAuthorizationProvider()
	authzService := authzProvider.GetAuthorizationService()

	if svcErr := authzService.RevokeAuthorization(request.UserID, request.AutomationID); svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	logger.Debug("Authorization revoked", log.String("userID", request.UserID),
		log.String("automationID", request.AutomationID))
}

// writeServiceError maps a service error to the HTTP response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	}
	utils.WriteJSONError(w, svcErr.Code, svcErr.ErrorDescription, statusCode)
}
