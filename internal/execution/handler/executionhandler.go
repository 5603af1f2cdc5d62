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

// Package handler provides the HTTP handlers for automation execution.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/flowmart/flowmart/internal/execution/constants"
	"github.com/flowmart/flowmart/internal/execution/model"
	"github.com/flowmart/flowmart/internal/execution/provider"
	sysconst "github.com/flowmart/flowmart/internal/system/constants"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	"github.com/flowmart/flowmart/internal/system/utils"
)

const loggerComponentName = "ExecutionHandler"

// ExecutionHandler handles the automation execution API requests.
type ExecutionHandler struct{}

// HandleRunPostRequest handles a request to run an automation for a user.
// A run blocked on missing scopes responds 200 with the consent URL rather
// than an error, so clients can redirect the user to grant access.
func (eh *ExecutionHandler) HandleRunPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var request model.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSONError(w, constants.ErrorInvalidAutomationID.Code,
			"Failed to parse the request body", http.StatusBadRequest)
		return
	}

	executionProvider := provider.NewExecutionProvider()
	executionService := executionProvider.GetExecutionService()

	result, svcErr := executionService.RunAutomation(r.Context(), request)
	if svcErr != nil {
		statusCode := http.StatusInternalServerError
		if svcErr.Type == serviceerror.ClientErrorType {
			statusCode = http.StatusBadRequest
			if svcErr.Code == constants.ErrorAutomationNotFound.Code {
				statusCode = http.StatusNotFound
			}
		}
		utils.WriteJSONError(w, svcErr.Code, svcErr.ErrorDescription, statusCode)
		return
	}

	w.Header().Set(sysconst.ContentTypeHeaderName, sysconst.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Debug("Run request handled", log.String("automationID", request.AutomationID),
		log.String("status", result.Status))
}
