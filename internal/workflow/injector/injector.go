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

// Package injector turns a workflow template into an executable instance:
// placeholder substitution, per-node credential assignment and shared
// platform credentials. The transform is pure; the template is never
// mutated.
package injector

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/utils"
	"github.com/flowmart/flowmart/internal/workflow/detector"
	"github.com/flowmart/flowmart/internal/workflow/model"
)

// Credential slot names the execution engine expects per Google service.
const (
	SlotGoogleOAuth2API       = "googleOAuth2Api"
	SlotGoogleDriveOAuth2API  = "googleDriveOAuth2Api"
	SlotGoogleSheetsOAuth2API = "googleSheetsOAuth2Api"
	SlotGmailOAuth2           = "gmailOAuth2"
	SlotOpenRouterAPI         = "openRouterApi"
)

var credentialSlots = map[scope.ServiceName]string{
	scope.ServiceDrive:  SlotGoogleDriveOAuth2API,
	scope.ServiceSheets: SlotGoogleSheetsOAuth2API,
	scope.ServiceGmail:  SlotGmailOAuth2,
}

// AI helper node types that receive the platform-shared credential instead
// of a per-user one.
var sharedAINodeTypes = map[string]string{
	"@n8n/n8n-nodes-langchain.lmChatOpenRouter": SlotOpenRouterAPI,
	"@n8n/n8n-nodes-langchain.openRouter":       SlotOpenRouterAPI,
}

// CredentialSlotForService maps a service to the engine credential slot its
// nodes consume. Services outside the approved catalog have no slot.
func CredentialSlotForService(service scope.ServiceName) (string, bool) {
	slot, ok := credentialSlots[service]
	return slot, ok
}

// Injection carries everything needed to instantiate a template for one
// user.
type Injection struct {
	// InstanceName uniquely names the instance in the engine, typically
	// "<owner email> - <automation name>".
	InstanceName string
	// CredentialHandles are the user's engine credential IDs keyed by
	// service. Nodes of a service with no handle keep their slot empty.
	CredentialHandles map[scope.ServiceName]string
	// ParameterValues replace {{NAME}} placeholder tokens. Tokens with no
	// value are left untouched.
	ParameterValues map[string]string
	// SharedAIHandle is the platform-owned credential ID applied to AI
	// helper nodes. Empty disables shared credential assignment.
	SharedAIHandle string
	// DefaultAIModel overrides a blank model parameter on AI helper nodes.
	// An explicitly empty model counts as unset.
	DefaultAIModel string
}

// Inject produces an executable workflow from the template. Connections,
// settings and static data pass through untouched; only parameters,
// credentials and the instance name change.
func Inject(template *model.Workflow, injection Injection) (*model.Workflow, error) {
	data, err := template.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workflow template: %w", err)
	}

	data = substitutePlaceholders(data, injection.ParameterValues)

	instance, err := model.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("substituted workflow no longer parses: %w", err)
	}

	for i := range instance.Nodes {
		assignServiceCredential(&instance.Nodes[i], injection.CredentialHandles)
		applySharedAICredential(&instance.Nodes[i], injection)
	}

	instance.Name = injection.InstanceName
	return instance, nil
}

// substitutePlaceholders replaces {{NAME}} tokens in the serialized
// template with JSON-escaped values.
func substitutePlaceholders(data []byte, values map[string]string) []byte {
	if len(values) == 0 {
		return data
	}
	text := string(data)
	for name, value := range values {
		escaped, err := json.Marshal(value)
		if err != nil {
			continue
		}
		// Strip the surrounding quotes; the token sits inside a JSON string.
		replacement := string(escaped[1 : len(escaped)-1])
		text = strings.ReplaceAll(text, "{{"+name+"}}", replacement)
	}
	return []byte(text)
}

// assignServiceCredential attaches the user's credential handle to the slot
// matching the node's service. Nodes with no matching handle are left bare.
func assignServiceCredential(node *model.Node, handles map[scope.ServiceName]string) {
	service, ok := detector.ServiceForNodeType(node.Type)
	if !ok {
		return
	}
	slot, ok := CredentialSlotForService(service)
	if !ok {
		return
	}
	handle, ok := handles[service]
	if !ok || handle == "" {
		return
	}
	if node.Credentials == nil {
		node.Credentials = make(map[string]model.CredentialRef)
	}
	node.Credentials[slot] = model.CredentialRef{ID: handle}
}

// applySharedAICredential attaches the platform credential to AI helper
// nodes and defaults a blank model parameter. A model set to an explicit
// empty string still receives the default.
func applySharedAICredential(node *model.Node, injection Injection) {
	slot, ok := sharedAINodeTypes[node.Type]
	if !ok {
		return
	}

	if injection.SharedAIHandle != "" {
		if node.Credentials == nil {
			node.Credentials = make(map[string]model.CredentialRef)
		}
		node.Credentials[slot] = model.CredentialRef{ID: injection.SharedAIHandle}
	}

	if injection.DefaultAIModel != "" {
		current, _ := node.Parameters["model"].(string)
		if utils.IsBlank(current) {
			if node.Parameters == nil {
				node.Parameters = make(map[string]interface{})
			}
			node.Parameters["model"] = injection.DefaultAIModel
		}
	}
}
