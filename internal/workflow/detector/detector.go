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

// Package detector derives the set of external services a workflow graph
// requires, from node types and parameter URL hints.
package detector

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/workflow/model"
)

// nodeTypeMapping binds an engine node type to the service it operates on.
type nodeTypeMapping struct {
	nodeType string
	service  scope.ServiceName
}

// Node types mapped to the Google service they operate on. Services beyond
// the approved catalog are still detected so upload validation can name
// them in its rejection reason.
var nodeTypeMappings = []nodeTypeMapping{
	{"n8n-nodes-base.googleDrive", scope.ServiceDrive},
	{"n8n-nodes-base.googleDriveTrigger", scope.ServiceDrive},
	{"n8n-nodes-base.googleSheets", scope.ServiceSheets},
	{"n8n-nodes-base.gmail", scope.ServiceGmail},
	{"n8n-nodes-base.gmailTool", scope.ServiceGmail},
	{"n8n-nodes-base.googleDocs", scope.ServiceDocs},
	{"n8n-nodes-base.googleCalendar", scope.ServiceCalendar},
	{"n8n-nodes-base.googleCalendarTool", scope.ServiceCalendar},
	{"n8n-nodes-base.youTube", scope.ServiceYouTube},
	{"n8n-nodes-base.googleSlides", scope.ServiceSlides},
	{"n8n-nodes-base.googleTasks", scope.ServiceTasks},
	{"n8n-nodes-base.googleContacts", scope.ServiceContacts},
	{"n8n-nodes-base.googleAnalytics", scope.ServiceAnalytics},
	{"n8n-nodes-base.googleAds", scope.ServiceAds},
}

// urlHintMapping binds an API host/path fragment found inside node
// parameters to a service. Catches generic HTTP nodes calling Google APIs.
type urlHintMapping struct {
	fragment string
	service  scope.ServiceName
}

var urlHintMappings = []urlHintMapping{
	{"sheets.googleapis.com", scope.ServiceSheets},
	{"docs.google.com/spreadsheets", scope.ServiceSheets},
	{"googleapis.com/auth/spreadsheets", scope.ServiceSheets},
	{"drive.googleapis.com", scope.ServiceDrive},
	{"drive.google.com", scope.ServiceDrive},
	{"googleapis.com/drive", scope.ServiceDrive},
	{"googleapis.com/auth/drive", scope.ServiceDrive},
	{"gmail.googleapis.com", scope.ServiceGmail},
	{"googleapis.com/gmail", scope.ServiceGmail},
	{"googleapis.com/auth/gmail", scope.ServiceGmail},
}

// ServiceForNodeType maps an engine node type to its service. The injector
// reuses this mapping so detection and credential assignment stay aligned.
func ServiceForNodeType(nodeType string) (scope.ServiceName, bool) {
	for _, mapping := range nodeTypeMappings {
		if mapping.nodeType == nodeType {
			return mapping.service, true
		}
	}
	return "", false
}

// DetectRequiredServices returns the set of services the workflow needs,
// sorted by name. Unrecognized node types contribute nothing.
func DetectRequiredServices(workflow *model.Workflow) []scope.ServiceName {
	found := make(map[scope.ServiceName]struct{})

	for _, node := range workflow.Nodes {
		if service, ok := ServiceForNodeType(node.Type); ok {
			found[service] = struct{}{}
		}
		for _, service := range servicesFromParameters(node.Parameters) {
			found[service] = struct{}{}
		}
	}

	services := make([]scope.ServiceName, 0, len(found))
	for service := range found {
		services = append(services, service)
	}
	sort.Slice(services, func(i, j int) bool { return services[i] < services[j] })
	return services
}

// DetectRequiredScopes expands the detected services to their scope URIs
// via the catalog. The basic identity scopes are excluded; callers decide
// whether the workflow needs any authorization at all from the service set.
func DetectRequiredScopes(workflow *model.Workflow, catalog *scope.Catalog) []string {
	uris := make([]string, 0)
	for _, service := range DetectRequiredServices(workflow) {
		uris = append(uris, catalog.ScopesForService(service)...)
	}
	return uris
}

// servicesFromParameters scans the textual form of node parameters for
// Google API URL fragments.
func servicesFromParameters(parameters map[string]interface{}) []scope.ServiceName {
	if len(parameters) == 0 {
		return nil
	}
	data, err := json.Marshal(parameters)
	if err != nil {
		return nil
	}
	text := strings.ToLower(string(data))

	var services []scope.ServiceName
	for _, mapping := range urlHintMappings {
		if strings.Contains(text, mapping.fragment) {
			services = append(services, mapping.service)
		}
	}
	return services
}
