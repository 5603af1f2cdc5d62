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

// Package model defines the data structures for automation management.
package model

import (
	"encoding/json"
	"time"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/workflow/inputs"
)

// Automation is a validated workflow template offered on the marketplace,
// together with the metadata derived from it at upload time.
type Automation struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	WorkflowJSON     json.RawMessage     `json:"workflow,omitempty"`
	RequiredServices []scope.ServiceName `json:"required_services"`
	Inputs           []inputs.InputSpec  `json:"inputs"`
	DeveloperKeys    []string            `json:"developer_keys,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// BasicAutomation is the listing view of an automation, without the workflow document.
type BasicAutomation struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	RequiredServices []scope.ServiceName `json:"required_services"`
}

// CreateAutomationRequest is the request body for uploading a new automation.
type CreateAutomationRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Workflow    json.RawMessage `json:"workflow"`
}
