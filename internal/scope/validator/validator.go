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

// Package validator gates workflow uploads on the approved scope catalog.
package validator

import (
	"strings"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/workflow/detector"
	"github.com/flowmart/flowmart/internal/workflow/model"
)

// Result carries the outcome of validating a workflow against the catalog.
// A failed validation is a business rule rejection, not an error.
type Result struct {
	IsValid          bool
	RequiredServices []scope.ServiceName
	MissingScopes    []string
	Message          string
}

// WorkflowScopeValidatorInterface defines the interface for the upload-time
// scope gate.
type WorkflowScopeValidatorInterface interface {
	Validate(workflow *model.Workflow) Result
}

// WorkflowScopeValidator is the default implementation of
// WorkflowScopeValidatorInterface.
type WorkflowScopeValidator struct {
	catalog *scope.Catalog
}

// NewWorkflowScopeValidator creates a validator against the given catalog.
func NewWorkflowScopeValidator(catalog *scope.Catalog) WorkflowScopeValidatorInterface {
	return &WorkflowScopeValidator{catalog: catalog}
}

// Validate detects the services the workflow requires, expands them to
// scope URIs and checks every URI against the approved catalog. Only the
// unapproved URIs are reported.
func (v *WorkflowScopeValidator) Validate(workflow *model.Workflow) Result {
	requiredServices := detector.DetectRequiredServices(workflow)

	approved := make(map[string]struct{})
	for _, uri := range v.catalog.AllScopes() {
		approved[uri] = struct{}{}
	}

	missingScopes := make([]string, 0)
	missingServices := make([]scope.ServiceName, 0)
	for _, service := range requiredServices {
		uris := v.catalog.ScopesForService(service)
		if len(uris) == 0 {
			uris = scope.CanonicalScopesForService(service)
		}

		serviceMissing := false
		for _, uri := range uris {
			if _, ok := approved[uri]; !ok {
				missingScopes = append(missingScopes, uri)
				serviceMissing = true
			}
		}
		if serviceMissing {
			missingServices = append(missingServices, service)
		}
	}

	result := Result{
		IsValid:          len(missingScopes) == 0,
		RequiredServices: requiredServices,
		MissingScopes:    missingScopes,
	}
	if !result.IsValid {
		result.Message = buildRejectionMessage(v.catalog, missingServices)
	}
	return result
}

// buildRejectionMessage names the unapproved services in human-readable
// form. Raw scope URIs never reach end users.
func buildRejectionMessage(catalog *scope.Catalog, services []scope.ServiceName) string {
	names := catalog.DisplayNames(services)
	return "This automation requires Google services that are not available on this platform yet: " +
		strings.Join(names, ", ")
}
