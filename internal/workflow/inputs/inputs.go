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

// Package inputs derives the user-facing input form of an automation from
// its workflow placeholders, and separates developer-owned keys from user
// inputs.
package inputs

import (
	"regexp"
	"sort"
	"strings"

	"github.com/flowmart/flowmart/internal/workflow/model"
)

// InputType classifies a required input.
type InputType string

// Input types.
const (
	InputTypeText InputType = "text"
	InputTypeFile InputType = "file"
)

// FileInputName is the reserved input name for file uploads required by
// file-processing nodes.
const FileInputName = "FILE_INPUT"

// InputSpec is one entry of an automation's required input form.
type InputSpec struct {
	Name string    `json:"name"`
	Type InputType `json:"type"`
}

// credentialNamePattern marks names that belong to connectors rather than
// user inputs.
var credentialNamePattern = regexp.MustCompile(`(?i)token|key|secret|oauth|bearer|auth|credential|password`)

var (
	enginePlaceholderPattern = regexp.MustCompile(`<__PLACEHOLDER_VALUE__(.+?)__>`)
	placeholderPattern       = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)
	dotBodyPattern           = regexp.MustCompile(`\$json\.body\.([a-zA-Z_][a-zA-Z0-9_]*)`)
	// Tolerates the escaped quotes produced by serializing the graph.
	bracketBodyPattern = regexp.MustCompile(`\$json\[\\?"body\\?"\]\[\\?"([a-zA-Z_][a-zA-Z0-9_]*)\\?"\]`)
	webhookCallPattern       = regexp.MustCompile(`\$\('Webhook'\)\.(?:item|first)\(\)\.json\.body\.([a-zA-Z_][a-zA-Z0-9_]*)`)
	nonIdentifierPattern     = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	camelBoundaryPattern     = regexp.MustCompile(`([A-Z])`)
)

// Node types that consume an uploaded file at run time.
var fileProcessingNodeTypes = []string{
	"n8n-nodes-base.extractFromFile",
	"n8n-nodes-base.readPdf",
	"n8n-nodes-base.readBinaryFile",
	"n8n-nodes-base.spreadsheetFile",
}

// ConvertEnginePlaceholders rewrites the engine's own placeholder tokens
// (`<__PLACEHOLDER_VALUE__Some description__>`) into `{{UPPER_SNAKE}}`
// form, returning the rewritten document and the generated names.
func ConvertEnginePlaceholders(data []byte) ([]byte, []string) {
	text := string(data)
	names := make([]string, 0)
	seen := make(map[string]struct{})

	matches := enginePlaceholderPattern.FindAllStringSubmatch(text, -1)
	for _, match := range matches {
		name := placeholderNameFromDescription(match[1])
		if name == "" {
			continue
		}
		text = strings.ReplaceAll(text, match[0], "{{"+name+"}}")
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return []byte(text), names
}

// placeholderNameFromDescription turns "Job title for the position" into
// "JOB_TITLE_FOR_THE_POSITION".
func placeholderNameFromDescription(description string) string {
	name := strings.Join(strings.Fields(description), "_")
	name = nonIdentifierPattern.ReplaceAllString(name, "")
	return strings.ToUpper(name)
}

// DetectUserInputs derives the required input form from a workflow: its
// `{{NAME}}` placeholders, webhook body field accesses and file-processing
// nodes. Credential-like names are connector wiring, not user inputs, and
// are excluded. Output is sorted by name.
func DetectUserInputs(workflow *model.Workflow) ([]InputSpec, error) {
	data, err := workflow.Serialize()
	if err != nil {
		return nil, err
	}
	text := string(data)

	names := make(map[string]struct{})

	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := strings.ToUpper(match[1])
		if credentialNamePattern.MatchString(name) {
			continue
		}
		names[name] = struct{}{}
	}

	for _, pattern := range []*regexp.Regexp{dotBodyPattern, bracketBodyPattern, webhookCallPattern} {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			field := match[1]
			if credentialNamePattern.MatchString(field) {
				continue
			}
			names[camelToUpperSnake(field)] = struct{}{}
		}
	}

	specs := make([]InputSpec, 0, len(names)+1)
	for name := range names {
		specs = append(specs, InputSpec{Name: name, Type: InputTypeText})
	}
	if hasFileProcessingNode(workflow) {
		specs = append(specs, InputSpec{Name: FileInputName, Type: InputTypeFile})
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs, nil
}

func hasFileProcessingNode(workflow *model.Workflow) bool {
	for _, node := range workflow.Nodes {
		for _, fileType := range fileProcessingNodeTypes {
			if node.Type == fileType {
				return true
			}
		}
	}
	return false
}

// camelToUpperSnake turns "tiktokUrl" into "TIKTOK_URL".
func camelToUpperSnake(field string) string {
	snake := camelBoundaryPattern.ReplaceAllString(field, "_$1")
	snake = strings.ToUpper(snake)
	return strings.TrimPrefix(snake, "_")
}

// Placeholder shapes that indicate developer-owned secrets.
var developerKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\{\{([A-Z_]*API[_]?KEY[A-Z_]*)\}\}`),
	regexp.MustCompile(`(?i)\{\{([A-Z_]*SECRET[A-Z_]*)\}\}`),
	regexp.MustCompile(`(?i)\{\{([A-Z_]*TOKEN[A-Z_]*)\}\}`),
	regexp.MustCompile(`(?i)\{\{([A-Z_]*PASSWORD[A-Z_]*)\}\}`),
	regexp.MustCompile(`(?i)\{\{([A-Z_]*AUTH[A-Z_]*)\}\}`),
	regexp.MustCompile(`(?i)\{\{([A-Z_]*CREDENTIAL[A-Z_]*)\}\}`),
}

// Placeholder name fragments that mark user inputs rather than developer
// keys, even when a key pattern matches.
var developerKeyExcludes = []string{
	"SHEET_ID", "SHEET_NAME", "EMAIL", "NAME", "PHONE", "ADDRESS", "MESSAGE",
	"SUBJECT", "BODY", "TITLE", "DESCRIPTION", "URL", "LINK", "DATE", "TIME",
	"AMOUNT", "QUANTITY", "USER_", "CUSTOMER_",
}

// DetectDeveloperKeys finds the secrets the automation author must supply:
// node credential slots (named `<type>_API_KEY`) and key-shaped placeholder
// tokens. Output is sorted.
func DetectDeveloperKeys(workflow *model.Workflow) ([]string, error) {
	data, err := workflow.Serialize()
	if err != nil {
		return nil, err
	}
	text := string(data)

	keys := make(map[string]struct{})

	for _, node := range workflow.Nodes {
		for credType := range node.Credentials {
			keys[credentialTypeToKeyName(credType)] = struct{}{}
		}
	}

	for _, pattern := range developerKeyPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			keyName := strings.ToUpper(match[1])
			excluded := false
			for _, exclude := range developerKeyExcludes {
				if strings.Contains(keyName, exclude) {
					excluded = true
					break
				}
			}
			if !excluded {
				keys[keyName] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(keys))
	for key := range keys {
		result = append(result, key)
	}
	sort.Strings(result)
	return result, nil
}

// credentialTypeToKeyName turns "openRouterApi" into "OPEN_ROUTER_API_KEY".
func credentialTypeToKeyName(credType string) string {
	name := strings.TrimSuffix(credType, "Api")
	name = camelBoundaryPattern.ReplaceAllString(name, "_$1")
	name = strings.ToUpper(name)
	name = strings.TrimPrefix(name, "_")
	return name + "_API_KEY"
}
