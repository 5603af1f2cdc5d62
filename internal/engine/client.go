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

// Package engine provides the typed client for the external workflow execution engine.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/flowmart/flowmart/internal/system/config"
	"github.com/flowmart/flowmart/internal/system/constants"
	syshttp "github.com/flowmart/flowmart/internal/system/http"
	"github.com/flowmart/flowmart/internal/system/log"
	wfmodel "github.com/flowmart/flowmart/internal/workflow/model"
)

const (
	loggerComponentName = "EngineClient"

	apiBasePath      = "/api/v1"
	apiKeyHeaderName = "X-N8N-API-KEY"

	// CredentialTypeGoogleOAuth2 is the generic Google credential type. It is the only
	// type whose payload carries a top-level scope field.
	CredentialTypeGoogleOAuth2 = "googleOAuth2Api"
	// CredentialTypeGoogleDrive is the Drive-specific Google credential type.
	CredentialTypeGoogleDrive = "googleDriveOAuth2Api"
	// CredentialTypeGoogleSheets is the Sheets-specific Google credential type.
	CredentialTypeGoogleSheets = "googleSheetsOAuth2Api"
	// CredentialTypeGmail is the Gmail-specific Google credential type.
	CredentialTypeGmail = "gmailOAuth2"
)

// OAuthTokenData is the token material embedded in an engine Google credential.
type OAuthTokenData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// GoogleCredential describes a Google OAuth credential to create in the engine.
type GoogleCredential struct {
	Name         string
	Type         string
	ClientID     string
	ClientSecret string
	Scope        string
	Token        OAuthTokenData
}

// ClientInterface defines the interface for the workflow execution engine client.
type ClientInterface interface {
	CreateWorkflow(ctx context.Context, workflow *wfmodel.Workflow) (string, error)
	ActivateWorkflow(ctx context.Context, workflowID string) error
	ExecuteWorkflow(ctx context.Context, workflowID string) (string, error)
	DeleteWorkflow(ctx context.Context, workflowID string) error
	CreateGoogleCredential(ctx context.Context, credential GoogleCredential) (string, error)
}

// Client is the default implementation of the ClientInterface.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient syshttp.HTTPClientInterface
}

// NewClient creates a new engine client from the runtime configuration.
func NewClient() ClientInterface {
	engineConfig := config.GetFlowmartRuntime().Config.Engine
	return &Client{
		BaseURL:    engineConfig.BaseURL,
		APIKey:     engineConfig.APIKey,
		HTTPClient: syshttp.GetHTTPClient(),
	}
}

// CreateWorkflow registers the workflow with the engine and returns the engine workflow ID.
func (c *Client) CreateWorkflow(ctx context.Context, workflow *wfmodel.Workflow) (string, error) {
	payload, err := workflow.Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to serialize workflow: %w", err)
	}

	body, err := c.request(ctx, http.MethodPost, "/workflows", payload)
	if err != nil {
		return "", fmt.Errorf("failed to create workflow: %w", err)
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse create workflow response: %w", err)
	}
	if response.ID == "" {
		return "", fmt.Errorf("engine returned no workflow ID")
	}

	return response.ID, nil
}

// ActivateWorkflow marks the workflow active so its triggers start firing.
func (c *Client) ActivateWorkflow(ctx context.Context, workflowID string) error {
	payload := []byte(`{"active": true}`)
	if _, err := c.request(ctx, http.MethodPatch, "/workflows/"+workflowID, payload); err != nil {
		return fmt.Errorf("failed to activate workflow %s: %w", workflowID, err)
	}
	return nil
}

// ExecuteWorkflow triggers a manual run of the workflow and returns the run identifier.
func (c *Client) ExecuteWorkflow(ctx context.Context, workflowID string) (string, error) {
	body, err := c.request(ctx, http.MethodPost, "/workflows/"+workflowID+"/execute", []byte(`{}`))
	if err != nil {
		return "", fmt.Errorf("failed to execute workflow %s: %w", workflowID, err)
	}

	var response struct {
		ExecutionID string `json:"executionId"`
		ID          string `json:"id"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse execute workflow response: %w", err)
	}
	if response.ExecutionID != "" {
		return response.ExecutionID, nil
	}
	return response.ID, nil
}

// DeleteWorkflow removes the workflow from the engine.
func (c *Client) DeleteWorkflow(ctx context.Context, workflowID string) error {
	if _, err := c.request(ctx, http.MethodDelete, "/workflows/"+workflowID, nil); err != nil {
		return fmt.Errorf("failed to delete workflow %s: %w", workflowID, err)
	}
	return nil
}

// CreateGoogleCredential creates a Google OAuth credential in the engine and returns its handle.
func (c *Client) CreateGoogleCredential(ctx context.Context, credential GoogleCredential) (string, error) {
	data := map[string]interface{}{
		"clientId":                     credential.ClientID,
		"clientSecret":                 credential.ClientSecret,
		"serverUrl":                    "",
		"sendAdditionalBodyProperties": false,
		"additionalBodyProperties":     "",
		"oauthTokenData":               credential.Token,
	}
	if credential.Type == CredentialTypeGoogleOAuth2 {
		data["scope"] = credential.Scope
	}

	payload, err := json.Marshal(map[string]interface{}{
		"name": credential.Name,
		"type": credential.Type,
		"data": data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize credential payload: %w", err)
	}

	body, err := c.request(ctx, http.MethodPost, "/credentials", payload)
	if err != nil {
		return "", fmt.Errorf("failed to create credential: %w", err)
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse create credential response: %w", err)
	}
	if response.ID == "" {
		return "", fmt.Errorf("engine returned no credential ID")
	}

	return response.ID, nil
}

// request issues one engine API call and returns the response body on a 2xx status.
func (c *Client) request(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+apiBasePath+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(apiKeyHeaderName, c.APIKey)
	if payload != nil {
		req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("Engine request failed", log.String("path", path), log.Error(err))
		return nil, fmt.Errorf("engine request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Engine returned non-success status",
			log.String("path", path), log.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("engine returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
