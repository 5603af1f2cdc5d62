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

	"github.com/flowmart/flowmart/internal/authz/handler"
	"github.com/flowmart/flowmart/internal/system/server"
)

// AuthorizationService is the service for authorization check operations.
type AuthorizationService struct {
	ServerOpsService server.ServerOperationServiceInterface
	authzHandler     *handler.AuthorizationHandler
}

// NewAuthorizationService creates a new instance of AuthorizationService.
func NewAuthorizationService(mux *http.ServeMux) ServiceInterface {
	instance := &AuthorizationService{
		ServerOpsService: server.NewServerOperationService(),
		authzHandler:     &handler.AuthorizationHandler{},
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for authorization check operations.
func (s *AuthorizationService) RegisterRoutes(mux *http.ServeMux) {
	opts := server.RequestWrapOptions{
		Cors: &server.Cors{
			AllowedMethods:   "POST",
			AllowedHeaders:   "Content-Type, Authorization",
			AllowCredentials: true,
		},
	}
	s.ServerOpsService.WrapHandleFunction(mux, "POST /access/check", &opts,
		s.authzHandler.HandleAccessCheckPostRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "POST /access/revoke", &opts,
		s.authzHandler.HandleRevokePostRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /access/", &opts,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
}
