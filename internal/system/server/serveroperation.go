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

// Package server provides server wide operations and utilities.
package server

import (
	"net/http"
	"slices"

	"github.com/flowmart/flowmart/internal/system/config"
)

// Cors holds the CORS header values applied to wrapped routes.
type Cors struct {
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
}

// RequestWrapOptions holds the options for wrapping an HTTP request handler.
type RequestWrapOptions struct {
	Cors *Cors
}

// ServerOperationServiceInterface defines the interface for server operations.
type ServerOperationServiceInterface interface {
	WrapHandleFunction(mux *http.ServeMux, pattern string, opts *RequestWrapOptions,
		handlerFunc http.HandlerFunc)
}

// ServerOperationService is the default implementation of ServerOperationServiceInterface.
type ServerOperationService struct{}

// NewServerOperationService creates a new instance of ServerOperationService.
func NewServerOperationService() ServerOperationServiceInterface {
	return &ServerOperationService{}
}

// WrapHandleFunction registers the handler on the mux with CORS headers applied per the options.
func (s *ServerOperationService) WrapHandleFunction(mux *http.ServeMux, pattern string,
	opts *RequestWrapOptions, handlerFunc http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		s.addAllowedOriginHeaders(w, r, opts)
		handlerFunc(w, r)
	})
}

// addAllowedOriginHeaders sets the CORS headers when the request origin is allowed.
func (s *ServerOperationService) addAllowedOriginHeaders(w http.ResponseWriter, r *http.Request,
	opts *RequestWrapOptions) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}

	allowedOrigins := config.GetFlowmartRuntime().Config.CORS.AllowedOrigins
	if !slices.Contains(allowedOrigins, origin) {
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", origin)
	if opts == nil || opts.Cors == nil {
		return
	}
	if opts.Cors.AllowedMethods != "" {
		w.Header().Set("Access-Control-Allow-Methods", opts.Cors.AllowedMethods)
	}
	if opts.Cors.AllowedHeaders != "" {
		w.Header().Set("Access-Control-Allow-Headers", opts.Cors.AllowedHeaders)
	}
	if opts.Cors.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}
