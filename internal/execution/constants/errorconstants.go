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

// Package constants defines constants and error definitions for automation execution.
package constants

import "github.com/flowmart/flowmart/internal/system/error/serviceerror"

// Client errors for automation execution operations.
var (
	// ErrorInvalidUserID is the error returned when the provided user ID is invalid.
	ErrorInvalidUserID = serviceerror.ServiceError{
		Code:             "EXEC-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid user ID",
		ErrorDescription: "The provided user ID is empty or invalid",
	}
	// ErrorInvalidAutomationID is the error returned when the provided automation ID is invalid.
	ErrorInvalidAutomationID = serviceerror.ServiceError{
		Code:             "EXEC-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid automation ID",
		ErrorDescription: "The provided automation ID is empty or invalid",
	}
	// ErrorAutomationNotFound is the error returned when the automation to run does not exist.
	ErrorAutomationNotFound = serviceerror.ServiceError{
		Code:             "EXEC-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Automation not found",
		ErrorDescription: "No automation exists for the provided ID",
	}
)

// Server errors for automation execution operations.
var (
	// ErrorInternalServerError is the error returned when an unexpected server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "EXEC-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorEngineFailure is the error returned when the workflow engine rejects a request.
	ErrorEngineFailure = serviceerror.ServiceError{
		Code:             "EXEC-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Engine failure",
		ErrorDescription: "The workflow engine could not process the request",
	}
	// ErrorCredentialProvisioningFailure is the error returned when engine credentials
	// cannot be created for the user.
	ErrorCredentialProvisioningFailure = serviceerror.ServiceError{
		Code:             "EXEC-5002",
		Type:             serviceerror.ServerErrorType,
		Error:            "Credential provisioning failure",
		ErrorDescription: "Failed to provision engine credentials for the user",
	}
)
