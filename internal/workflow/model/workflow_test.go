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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type WorkflowModelTestSuite struct {
	suite.Suite
}

func TestWorkflowModelSuite(t *testing.T) {
	suite.Run(t, new(WorkflowModelTestSuite))
}

func (suite *WorkflowModelTestSuite) TestParse() {
	data := []byte(`{
		"name": "Lead Sync",
		"nodes": [
			{
				"name": "Sheets",
				"type": "n8n-nodes-base.googleSheets",
				"parameters": {"documentId": "abc"},
				"credentials": {"googleSheetsOAuth2Api": {"id": "cred-1", "name": "Sheets account"}}
			}
		],
		"connections": {"Sheets": {"main": [[]]}},
		"settings": {"executionOrder": "v1"},
		"staticData": {"counter": 3}
	}`)

	wf, err := Parse(data)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lead Sync", wf.Name)
	assert.Len(suite.T(), wf.Nodes, 1)
	assert.Equal(suite.T(), "n8n-nodes-base.googleSheets", wf.Nodes[0].Type)
	assert.Equal(suite.T(), "cred-1", wf.Nodes[0].Credentials["googleSheetsOAuth2Api"].ID)
	assert.JSONEq(suite.T(), `{"Sheets": {"main": [[]]}}`, string(wf.Connections))
	assert.JSONEq(suite.T(), `{"executionOrder": "v1"}`, string(wf.Settings))
	assert.JSONEq(suite.T(), `{"counter": 3}`, string(wf.StaticData))
}

func (suite *WorkflowModelTestSuite) TestParseMalformed() {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "Not JSON",
			data: `{"nodes": [`,
		},
		{
			name: "Missing nodes",
			data: `{"connections": {}}`,
		},
		{
			name: "Nodes is null",
			data: `{"nodes": null, "connections": {}}`,
		},
		{
			name: "Nodes is not an array",
			data: `{"nodes": "none", "connections": {}}`,
		},
		{
			name: "Missing connections",
			data: `{"nodes": []}`,
		},
		{
			name: "Connections is not an object",
			data: `{"nodes": [], "connections": []}`,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			wf, err := Parse([]byte(tc.data))
			assert.Nil(t, wf)
			assert.ErrorIs(t, err, ErrMalformedWorkflow)
		})
	}
}

func (suite *WorkflowModelTestSuite) TestParseEmptyGraph() {
	wf, err := Parse([]byte(`{"nodes": [], "connections": {}}`))
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), wf.Nodes)
}

func (suite *WorkflowModelTestSuite) TestClone() {
	wf, err := Parse([]byte(`{
		"nodes": [{"name": "Drive", "type": "n8n-nodes-base.googleDrive", "parameters": {"operation": "upload"}}],
		"connections": {"Drive": {}}
	}`))
	assert.NoError(suite.T(), err)

	clone, err := wf.Clone()
	assert.NoError(suite.T(), err)

	clone.Name = "changed"
	clone.Nodes[0].Parameters["operation"] = "download"
	clone.Nodes[0].Credentials = map[string]CredentialRef{"googleDriveOAuth2Api": {ID: "cred-9"}}

	assert.Empty(suite.T(), wf.Name)
	assert.Equal(suite.T(), "upload", wf.Nodes[0].Parameters["operation"])
	assert.Nil(suite.T(), wf.Nodes[0].Credentials)
}

func (suite *WorkflowModelTestSuite) TestSerializeRoundTrip() {
	original := []byte(`{
		"name": "Digest",
		"nodes": [{"name": "Gmail", "type": "n8n-nodes-base.gmail", "typeVersion": 2.1, "position": [100, 200]}],
		"connections": {"Gmail": {"main": [[]]}}
	}`)

	wf, err := Parse(original)
	assert.NoError(suite.T(), err)

	data, err := wf.Serialize()
	assert.NoError(suite.T(), err)

	reparsed, err := Parse(data)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), wf, reparsed)
}
