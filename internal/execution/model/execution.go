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

// Package model defines the data structures for automation execution.
package model

import "github.com/flowmart/flowmart/internal/scope"

// Run statuses.
const (
	// RunStatusStarted indicates the workflow instance was created and execution began.
	RunStatusStarted = "started"
	// RunStatusAuthorizationRequired indicates the run was not started because the
	// user must first grant access for one or more services.
	RunStatusAuthorizationRequired = "authorization_required"
)

// RunRequest is the request to run an automation for a user.
type RunRequest struct {
	AutomationID    string            `json:"automation_id"`
	UserID          string            `json:"user_id"`
	UserEmail       string            `json:"user_email,omitempty"`
	ParameterValues map[string]string `json:"parameter_values,omitempty"`
}

// RunResult is the outcome of a run request. A run that needs authorization
// carries the consent URL instead of execution identifiers.
type RunResult struct {
	Status           string              `json:"status"`
	WorkflowID       string              `json:"workflow_id,omitempty"`
	ExecutionID      string              `json:"execution_id,omitempty"`
	MissingServices  []scope.ServiceName `json:"missing_services,omitempty"`
	AuthorizationURL string              `json:"authorization_url,omitempty"`
}
