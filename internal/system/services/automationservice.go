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

package services

import (
	"net/http"

	"github.com/flowmart/flowmart/internal/automation/handler"
	"github.com/flowmart/flowmart/internal/system/server"
)

// AutomationService is the service for automation management operations.
type AutomationService struct {
	ServerOpsService  server.ServerOperationServiceInterface
	automationHandler *handler.AutomationHandler
}

// NewAutomationService creates a new instance of AutomationService.
func NewAutomationService(mux *http.ServeMux) ServiceInterface {
	instance := &AutomationService{
		ServerOpsService:  server.NewServerOperationService(),
		automationHandler: &handler.AutomationHandler{},
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for automation management operations.
func (s *AutomationService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := server.RequestWrapOptions{
		Cors: &server.Cors{
			AllowedMethods:   "GET, POST",
			AllowedHeaders:   "Content-Type, Authorization",
			AllowCredentials: true,
		},
	}
	s.ServerOpsService.WrapHandleFunction(mux, "POST /automations", &opts1,
		s.automationHandler.HandleAutomationPostRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "GET /automations", &opts1,
		s.automationHandler.HandleAutomationListRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /automations", &opts1,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

	opts2 := server.RequestWrapOptions{
		Cors: &server.Cors{
			AllowedMethods:   "GET, DELETE",
			AllowedHeaders:   "Content-Type, Authorization",
			AllowCredentials: true,
		},
	}
	s.ServerOpsService.WrapHandleFunction(mux, "GET /automations/", &opts2,
		s.automationHandler.HandleAutomationGetRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "DELETE /automations/", &opts2,
		s.automationHandler.HandleAutomationDeleteRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /automations/", &opts2,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
}
