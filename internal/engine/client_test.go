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

package engine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	syshttp "github.com/flowmart/flowmart/internal/system/http"
	wfmodel "github.com/flowmart/flowmart/internal/workflow/model"
)

type EngineClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *Client
}

func TestEngineClientTestSuite(t *testing.T) {
	suite.Run(t, new(EngineClientTestSuite))
}

func (suite *EngineClientTestSuite) SetupTest() {
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.handler(w, r)
	}))
	suite.client = &Client{
		BaseURL:    suite.server.URL,
		APIKey:     "test-api-key",
		HTTPClient: syshttp.NewHTTPClient(),
	}
}

func (suite *EngineClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *EngineClientTestSuite) TestCreateWorkflow() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Equal(suite.T(), "/api/v1/workflows", r.URL.Path)
		assert.Equal(suite.T(), "test-api-key", r.Header.Get("X-N8N-API-KEY"))
		assert.Equal(suite.T(), "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(suite.T(), err)
		var posted map[string]interface{}
		assert.NoError(suite.T(), json.Unmarshal(body, &posted))
		assert.Equal(suite.T(), "Weekly Report", posted["name"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "wf-1"}`))
	}

	workflow, err := wfmodel.Parse([]byte(`{"name": "Weekly Report", "nodes": [], "connections": {}}`))
	assert.NoError(suite.T(), err)

	id, err := suite.client.CreateWorkflow(context.Background(), workflow)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "wf-1", id)
}

func (suite *EngineClientTestSuite) TestActivateWorkflow() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPatch, r.Method)
		assert.Equal(suite.T(), "/api/v1/workflows/wf-1", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(suite.T(), err)
		assert.JSONEq(suite.T(), `{"active": true}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "wf-1", "active": true}`))
	}

	assert.NoError(suite.T(), suite.client.ActivateWorkflow(context.Background(), "wf-1"))
}

func (suite *EngineClientTestSuite) TestExecuteWorkflow() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Equal(suite.T(), "/api/v1/workflows/wf-1/execute", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"executionId": "run-9"}`))
	}

	runID, err := suite.client.ExecuteWorkflow(context.Background(), "wf-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "run-9", runID)
}

func (suite *EngineClientTestSuite) TestDeleteWorkflow() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodDelete, r.Method)
		assert.Equal(suite.T(), "/api/v1/workflows/wf-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}

	assert.NoError(suite.T(), suite.client.DeleteWorkflow(context.Background(), "wf-1"))
}

func (suite *EngineClientTestSuite) TestCreateGoogleCredential() {
	var posted map[string]interface{}
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Equal(suite.T(), "/api/v1/credentials", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(suite.T(), err)
		assert.NoError(suite.T(), json.Unmarshal(body, &posted))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cred-1"}`))
	}

	handle, err := suite.client.CreateGoogleCredential(context.Background(), GoogleCredential{
		Name:         "user@example.com - Drive",
		Type:         CredentialTypeGoogleDrive,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Token: OAuthTokenData{
			AccessToken:  "at-1",
			RefreshToken: "rt-1",
			TokenType:    "Bearer",
			ExpiresIn:    3600,
			Scope:        "https://www.googleapis.com/auth/drive.file",
		},
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "cred-1", handle)

	assert.Equal(suite.T(), "googleDriveOAuth2Api", posted["type"])
	data := posted["data"].(map[string]interface{})
	assert.Equal(suite.T(), "client-id", data["clientId"])
	assert.Equal(suite.T(), "", data["serverUrl"])
	assert.Equal(suite.T(), false, data["sendAdditionalBodyProperties"])

	// Only the generic googleOAuth2Api type carries a top-level scope.
	_, hasScope := data["scope"]
	assert.False(suite.T(), hasScope)

	tokenData := data["oauthTokenData"].(map[string]interface{})
	assert.Equal(suite.T(), "at-1", tokenData["access_token"])
	assert.Equal(suite.T(), "Bearer", tokenData["token_type"])
}

func (suite *EngineClientTestSuite) TestCreateGoogleCredential_GenericTypeCarriesScope() {
	var posted map[string]interface{}
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(suite.T(), err)
		assert.NoError(suite.T(), json.Unmarshal(body, &posted))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cred-2"}`))
	}

	_, err := suite.client.CreateGoogleCredential(context.Background(), GoogleCredential{
		Name:  "user@example.com - Google",
		Type:  CredentialTypeGoogleOAuth2,
		Scope: "openid https://www.googleapis.com/auth/drive.file",
	})
	assert.NoError(suite.T(), err)

	data := posted["data"].(map[string]interface{})
	assert.Equal(suite.T(), "openid https://www.googleapis.com/auth/drive.file", data["scope"])
}

func (suite *EngineClientTestSuite) TestNonSuccessStatusSurfacesBody() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "unauthorized"}`))
	}

	_, err := suite.client.ExecuteWorkflow(context.Background(), "wf-1")
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "status 401")
	assert.Contains(suite.T(), err.Error(), "unauthorized")
}
