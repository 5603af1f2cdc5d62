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

// Package constants defines the constants and errors for authorization operations.
package constants

import (
	"errors"

	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

// ErrAuthorizationNotFound is returned when no authorization record exists for the requested key.
var ErrAuthorizationNotFound = errors.New("authorization record not found")

// Client errors for authorization operations.
var (
	// ErrorInvalidUserID is the error returned when an invalid user ID is provided.
	ErrorInvalidUserID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHZ-1001",
		Error:            "Invalid user ID",
		ErrorDescription: "The provided user ID is invalid or empty",
	}
	// ErrorInvalidAutomationID is the error returned when an invalid automation ID is provided.
	ErrorInvalidAutomationID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHZ-1002",
		Error:            "Invalid automation ID",
		ErrorDescription: "The provided automation ID is invalid or empty",
	}
	// ErrorInvalidProvider is the error returned when an invalid provider is provided.
	ErrorInvalidProvider = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHZ-1003",
		Error:            "Invalid provider",
		ErrorDescription: "The provided authorization provider is invalid or empty",
	}
	// ErrorMalformedWorkflow is the error returned when the workflow document cannot be parsed.
	ErrorMalformedWorkflow = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHZ-1004",
		Error:            "Malformed workflow",
		ErrorDescription: "The workflow document is missing required structural fields",
	}
	// ErrorAuthorizationNotFound is the error returned when no authorization record exists.
	ErrorAuthorizationNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTHZ-1005",
		Error:            "Authorization not found",
		ErrorDescription: "No authorization record exists for the requested user and automation",
	}
)

// Server errors for authorization operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTHZ-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorStoreUnavailable is the error returned when the authorization state store cannot be reached.
	ErrorStoreUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTHZ-5001",
		Error:            "Authorization store unavailable",
		ErrorDescription: "The authorization state could not be read. Please try again",
	}
)
