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

// Package handler provides the HTTP handlers for automation management.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flowmart/flowmart/internal/automation/constants"
	"github.com/flowmart/flowmart/internal/automation/model"
	"github.com/flowmart/flowmart/internal/automation/provider"
	sysconst "github.com/flowmart/flowmart/internal/system/constants"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	"github.com/flowmart/flowmart/internal/system/utils"
)

const loggerComponentName = "AutomationHandler"

// AutomationHandler handles the automation management API requests.
type AutomationHandler struct{}

// HandleAutomationPostRequest handles the upload of a new automation.
func (ah *AutomationHandler) HandleAutomationPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var request model.CreateAutomationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSONError(w, constants.ErrorMalformedWorkflow.Code,
			"Failed to parse the request body", http.StatusBadRequest)
		return
	}

	automationProvider := provider.NewAutomationProvider()
	automationService := automationProvider.GetAutomationService()

	automation, svcErr := automationService.CreateAutomation(request.Name, request.Description, request.Workflow)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(automation); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Automation created", log.String("automationID", automation.ID))
}

// HandleAutomationListRequest handles the listing of automations.
func (ah *AutomationHandler) HandleAutomationListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	automationProvider := provider.NewAutomationProvider()
	automationService := automationProvider.GetAutomationService()

	automations, svcErr := automationService.GetAutomationList()
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(automations); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Automation list retrieved")
}

// HandleAutomationGetRequest handles the retrieval of a single automation.
func (ah *AutomationHandler) HandleAutomationGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := strings.TrimPrefix(r.URL.Path, "/automations/")
	if id == "" {
		utils.WriteJSONError(w, constants.ErrorInvalidAutomationID.Code,
			constants.ErrorInvalidAutomationID.ErrorDescription, http.StatusBadRequest)
		return
	}

	automationProvider := provider.NewAutomationProvider()
	automationService := automationProvider.GetAutomationService()

	automation, svcErr := automationService.GetAutomation(id)
	if svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(automation); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Automation retrieved", log.String("automationID", id))
}

// HandleAutomationDeleteRequest handles the deletion of an automation.
func (ah *AutomationHandler) HandleAutomationDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := strings.TrimPrefix(r.URL.Path, "/automations/")
	if id == "" {
		utils.WriteJSONError(w, constants.ErrorInvalidAutomationID.Code,
			constants.ErrorInvalidAutomationID.ErrorDescription, http.StatusBadRequest)
		return
	}

	automationProvider := provider.NewAutomationProvider()
	automationService := automationProvider.GetAutomationService()

	if svcErr := automationService.DeleteAutomation(id); svcErr != nil {
		writeServiceError(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	logger.Debug("Automation deleted", log.String("automationID", id))
}

// writeServiceError maps a service error to the HTTP response.
func writeServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
		if svcErr.Code == constants.ErrorAutomationNotFound.Code {
			statusCode = http.StatusNotFound
		}
	}
	utils.WriteJSONError(w, svcErr.Code, svcErr.ErrorDescription, statusCode)
}
