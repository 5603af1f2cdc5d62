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

	"github.com/flowmart/flowmart/internal/execution/handler"
	"github.com/flowmart/flowmart/internal/system/server"
)

// ExecutionService is the service for automation execution operations.
type ExecutionService struct {
	ServerOpsService server.ServerOperationServiceInterface
	executionHandler *handler.ExecutionHandler
}

// NewExecutionService creates a new instance of ExecutionService.
func NewExecutionService(mux *http.ServeMux) ServiceInterface {
	instance := &ExecutionService{
		ServerOpsService: server.NewServerOperationService(),
		executionHandler: &handler.ExecutionHandler{},
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for automation execution operations.
func (s *ExecutionService) RegisterRoutes(mux *http.ServeMux) {
	opts := server.RequestWrapOptions{
		Cors: &server.Cors{
			AllowedMethods:   "POST",
			AllowedHeaders:   "Content-Type, Authorization",
			AllowCredentials: true,
		},
	}
	s.ServerOpsService.WrapHandleFunction(mux, "POST /runs", &opts,
		s.executionHandler.HandleRunPostRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /runs", &opts,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
}
