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

// Package constants defines constants and error definitions for automation management.
package constants

import (
	"errors"

	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
)

// ErrAutomationNotFound is returned by the store when no automation exists for the given ID.
var ErrAutomationNotFound = errors.New("automation not found")

// Client errors for automation management operations.
var (
	// ErrorInvalidAutomationID is the error returned when the provided automation ID is invalid.
	ErrorInvalidAutomationID = serviceerror.ServiceError{
		Code:             "AUTO-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid automation ID",
		ErrorDescription: "The provided automation ID is empty or invalid",
	}
	// ErrorInvalidAutomationName is the error returned when the automation name is missing.
	ErrorInvalidAutomationName = serviceerror.ServiceError{
		Code:             "AUTO-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid automation name",
		ErrorDescription: "Automation name is required",
	}
	// ErrorMalformedWorkflow is the error returned when the workflow document cannot be parsed.
	ErrorMalformedWorkflow = serviceerror.ServiceError{
		Code:             "AUTO-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Malformed workflow document",
		ErrorDescription: "The workflow document is not a valid workflow definition",
	}
	// ErrorWorkflowValidationFailed is the error returned when the workflow references
	// services outside the supported catalog.
	ErrorWorkflowValidationFailed = serviceerror.ServiceError{
		Code:             "AUTO-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Workflow validation failed",
		ErrorDescription: "The workflow uses services that are not supported",
	}
	// ErrorAutomationNotFound is the error returned when the requested automation does not exist.
	ErrorAutomationNotFound = serviceerror.ServiceError{
		Code:             "AUTO-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Automation not found",
		ErrorDescription: "No automation exists for the provided ID",
	}
)

// Server errors for automation management operations.
var (
	// ErrorInternalServerError is the error returned when an unexpected server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "AUTO-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
