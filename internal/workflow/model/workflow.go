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

// Package model defines the workflow graph structures exchanged with the
// execution engine.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedWorkflow is returned when a workflow document is not a valid
// workflow graph.
var ErrMalformedWorkflow = errors.New("malformed workflow")

// CredentialRef identifies an engine credential attached to a node slot.
type CredentialRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Node is a single step in the workflow graph. Position and typeVersion are
// carried opaquely for the engine.
type Node struct {
	Name        string                   `json:"name"`
	Type        string                   `json:"type"`
	TypeVersion json.RawMessage          `json:"typeVersion,omitempty"`
	Position    json.RawMessage          `json:"position,omitempty"`
	Parameters  map[string]interface{}   `json:"parameters,omitempty"`
	Credentials map[string]CredentialRef `json:"credentials,omitempty"`
	WebhookID   string                   `json:"webhookId,omitempty"`
	Disabled    *bool                    `json:"disabled,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
}

// Workflow is the parsed workflow graph. Connections, settings and static
// data are opaque to this system and passed through to the engine untouched.
type Workflow struct {
	Name        string          `json:"name,omitempty"`
	Nodes       []Node          `json:"nodes"`
	Connections json.RawMessage `json:"connections"`
	Settings    json.RawMessage `json:"settings,omitempty"`
	StaticData  json.RawMessage `json:"staticData,omitempty"`
}

// Parse decodes a workflow document, failing fast when the nodes array or
// connections object is missing or of the wrong shape.
func Parse(data []byte) (*Workflow, error) {
	var raw struct {
		Name        string          `json:"name"`
		Nodes       json.RawMessage `json:"nodes"`
		Connections json.RawMessage `json:"connections"`
		Settings    json.RawMessage `json:"settings"`
		StaticData  json.RawMessage `json:"staticData"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWorkflow, err)
	}

	if len(raw.Nodes) == 0 || isJSONNull(raw.Nodes) {
		return nil, fmt.Errorf("%w: missing nodes array", ErrMalformedWorkflow)
	}
	var nodes []Node
	if err := json.Unmarshal(raw.Nodes, &nodes); err != nil {
		return nil, fmt.Errorf("%w: nodes is not an array of nodes: %w", ErrMalformedWorkflow, err)
	}

	if len(raw.Connections) == 0 || isJSONNull(raw.Connections) {
		return nil, fmt.Errorf("%w: missing connections object", ErrMalformedWorkflow)
	}
	if !isJSONObject(raw.Connections) {
		return nil, fmt.Errorf("%w: connections is not an object", ErrMalformedWorkflow)
	}

	return &Workflow{
		Name:        raw.Name,
		Nodes:       nodes,
		Connections: raw.Connections,
		Settings:    raw.Settings,
		StaticData:  raw.StaticData,
	}, nil
}

// Serialize encodes the workflow back to its document form.
func (w *Workflow) Serialize() ([]byte, error) {
	return json.Marshal(w)
}

// Clone returns a deep copy of the workflow.
func (w *Workflow) Clone() (*Workflow, error) {
	data, err := w.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workflow: %w", err)
	}
	var clone Workflow
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to parse workflow copy: %w", err)
	}
	return &clone, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
