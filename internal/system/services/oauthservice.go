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

	"github.com/flowmart/flowmart/internal/oauth/google/handler"
	"github.com/flowmart/flowmart/internal/system/server"
)

// OAuthService is the service for the Google OAuth consent flow operations.
type OAuthService struct {
	ServerOpsService server.ServerOperationServiceInterface
	oauthHandler     *handler.OAuthHandler
}

// NewOAuthService creates a new instance of OAuthService.
func NewOAuthService(mux *http.ServeMux) ServiceInterface {
	instance := &OAuthService{
		ServerOpsService: server.NewServerOperationService(),
		oauthHandler:     &handler.OAuthHandler{},
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the Google OAuth consent flow.
func (s *OAuthService) RegisterRoutes(mux *http.ServeMux) {
	opts := server.RequestWrapOptions{
		Cors: &server.Cors{
			AllowedMethods:   "GET",
			AllowedHeaders:   "Content-Type, Authorization",
			AllowCredentials: true,
		},
	}
	s.ServerOpsService.WrapHandleFunction(mux, "GET /oauth/google/authorize", &opts,
		s.oauthHandler.HandleAuthorizeGetRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "GET /oauth/google/callback", &opts,
		s.oauthHandler.HandleCallbackGetRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /oauth/google/", &opts,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
}
