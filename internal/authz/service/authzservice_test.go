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

package service

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flowmart/flowmart/internal/authz/constants"
	"github.com/flowmart/flowmart/internal/authz/model"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/config"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/tests/mocks/authz/storemock"
)

const (
	testUserID       = "user-1"
	testAutomationID = "auto-1"
)

type AuthorizationServiceTestSuite struct {
	suite.Suite
	mockStore *storemock.AuthorizationStoreInterfaceMock
	service   *AuthorizationService
}

func TestAuthorizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizationServiceTestSuite))
}

func (suite *AuthorizationServiceTestSuite) SetupTest() {
	config.ResetFlowmartRuntime()
	err := config.InitializeFlowmartRuntime("/tmp", &config.Config{
		GateClient: config.GateClientConfig{
			BaseURL: "https://flowmart.io",
		},
	})
	assert.NoError(suite.T(), err)

	suite.mockStore = &storemock.AuthorizationStoreInterfaceMock{}
	suite.service = &AuthorizationService{
		AuthzStore: suite.mockStore,
		Catalog:    scope.GetDefaultCatalog(),
	}
}

func (suite *AuthorizationServiceTestSuite) TearDownTest() {
	config.ResetFlowmartRuntime()
}

func parseAuthorizationURL(t *testing.T, rawURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	assert.NoError(t, err)
	assert.Equal(t, "/authorize", parsed.Path)
	return parsed.Query()
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_NoRequiredServices() {
	workflowDoc := []byte(`{"nodes": [{"name": "Set", "type": "n8n-nodes-base.set"}], "connections": {}}`)

	result, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.HasAllScopes)
	assert.Empty(suite.T(), result.MissingServices)
	assert.Empty(suite.T(), result.AuthorizationURL)

	// A workflow with no external services must never touch the store.
	suite.mockStore.AssertNotCalled(suite.T(), "GetAuthorizationRecord")
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_NoRecord() {
	workflowDoc := []byte(`{"nodes": [
		{"name": "Drive", "type": "n8n-nodes-base.googleDrive"},
		{"name": "Gmail", "type": "n8n-nodes-base.gmail"}
	], "connections": {}}`)

	suite.mockStore.On("GetAuthorizationRecord", testUserID, testAutomationID, model.ProviderGoogle).
		Return(nil, constants.ErrAuthorizationNotFound)

	result, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.HasAllScopes)
	assert.Equal(suite.T(), []scope.ServiceName{scope.ServiceDrive, scope.ServiceGmail},
		result.MissingServices)

	query := parseAuthorizationURL(suite.T(), result.AuthorizationURL)
	assert.Equal(suite.T(), testAutomationID, query.Get("automation_id"))
	assert.Equal(suite.T(), testUserID, query.Get("user_id"))
	assert.Equal(suite.T(), "DRIVE,GMAIL", query.Get("services"))

	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_LeastPrivilegeIncrementalURL() {
	workflowDoc := []byte(`{"nodes": [
		{"name": "Drive", "type": "n8n-nodes-base.googleDrive"},
		{"name": "Sheets", "type": "n8n-nodes-base.googleSheets"}
	], "connections": {}}`)

	suite.mockStore.On("GetAuthorizationRecord", testUserID, testAutomationID, model.ProviderGoogle).
		Return(&model.AuthorizationRecord{
			UserID:        testUserID,
			AutomationID:  testAutomationID,
			Provider:      model.ProviderGoogle,
			GrantedScopes: []string{"openid", "https://www.googleapis.com/auth/drive.file"},
		}, nil)

	result, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.HasAllScopes)

	// Only the ungranted service appears, both in the result and in the URL.
	assert.Equal(suite.T(), []scope.ServiceName{scope.ServiceSheets}, result.MissingServices)
	query := parseAuthorizationURL(suite.T(), result.AuthorizationURL)
	assert.Equal(suite.T(), "SHEETS", query.Get("services"))

	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_AllScopesGranted() {
	workflowDoc := []byte(`{"nodes": [
		{"name": "Drive", "type": "n8n-nodes-base.googleDrive"}
	], "connections": {}}`)

	suite.mockStore.On("GetAuthorizationRecord", testUserID, testAutomationID, model.ProviderGoogle).
		Return(&model.AuthorizationRecord{
			UserID:        testUserID,
			AutomationID:  testAutomationID,
			Provider:      model.ProviderGoogle,
			GrantedScopes: []string{"https://www.googleapis.com/auth/drive.file"},
		}, nil)

	result, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), result.HasAllScopes)
	assert.Empty(suite.T(), result.MissingServices)
	assert.Empty(suite.T(), result.AuthorizationURL)
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_MalformedWorkflowFailsClosed() {
	result, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, []byte(`{"connections": {}}`))
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), result.HasAllScopes)

	// Every catalog service is reported missing rather than silently allowing execution.
	assert.Equal(suite.T(), suite.service.Catalog.ServiceNames(), result.MissingServices)
	assert.NotEmpty(suite.T(), result.AuthorizationURL)

	suite.mockStore.AssertNotCalled(suite.T(), "GetAuthorizationRecord")
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_StoreErrorPropagates() {
	workflowDoc := []byte(`{"nodes": [
		{"name": "Drive", "type": "n8n-nodes-base.googleDrive"}
	], "connections": {}}`)

	suite.mockStore.On("GetAuthorizationRecord", testUserID, testAutomationID, model.ProviderGoogle).
		Return(nil, errors.New("connection refused"))

	result, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), result)
	assert.NotNil(suite.T(), svcErr)

	// A store outage must never be read as "no record granted yet".
	assert.Equal(suite.T(), constants.ErrorStoreUnavailable.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, svcErr.Type)
}

func (suite *AuthorizationServiceTestSuite) TestCheckAccess_InvalidInput() {
	testCases := []struct {
		name         string
		userID       string
		automationID string
		expected     string
	}{
		{
			name:         "Empty user ID",
			userID:       "",
			automationID: testAutomationID,
			expected:     constants.ErrorInvalidUserID.Code,
		},
		{
			name:         "Empty automation ID",
			userID:       testUserID,
			automationID: "  ",
			expected:     constants.ErrorInvalidAutomationID.Code,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			result, svcErr := suite.service.CheckAccess(tc.userID, tc.automationID,
				[]byte(`{"nodes": [], "connections": {}}`))
			assert.Nil(t, result)
			assert.NotNil(t, svcErr)
			assert.Equal(t, tc.expected, svcErr.Code)
		})
	}
}

func (suite *AuthorizationServiceTestSuite) TestIncrementalFlow() {
	workflowDoc := []byte(`{"nodes": [
		{"name": "Drive", "type": "n8n-nodes-base.googleDrive"},
		{"name": "Gmail", "type": "n8n-nodes-base.gmail"}
	], "connections": {}}`)

	// First check: nothing granted yet.
	suite.mockStore.On("GetAuthorizationRecord", testUserID, testAutomationID, model.ProviderGoogle).
		Return(nil, constants.ErrAuthorizationNotFound).Once()

	first, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), first.HasAllScopes)
	assert.Equal(suite.T(), "DRIVE,GMAIL",
		parseAuthorizationURL(suite.T(), first.AuthorizationURL).Get("services"))

	// The user consents and the callback records the grant.
	granted := &model.AuthorizationRecord{
		UserID:       testUserID,
		AutomationID: testAutomationID,
		Provider:     model.ProviderGoogle,
		GrantedScopes: []string{
			"https://www.googleapis.com/auth/drive.file",
			"https://www.googleapis.com/auth/gmail.send",
		},
		CredentialHandles: map[string]string{"DRIVE": "cred-1", "GMAIL": "cred-2"},
	}
	suite.mockStore.On("UpsertAuthorizationRecord", granted).Return(granted, nil).Once()

	merged, svcErr := suite.service.RecordGrant(granted)
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), granted.GrantedScopes, merged.GrantedScopes)

	// Second check passes without another consent round.
	suite.mockStore.On("GetAuthorizationRecord", testUserID, testAutomationID, model.ProviderGoogle).
		Return(granted, nil).Once()

	second, svcErr := suite.service.CheckAccess(testUserID, testAutomationID, workflowDoc)
	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), second.HasAllScopes)

	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestRevokeAuthorization() {
	suite.mockStore.On("RevokeAuthorization", testUserID, testAutomationID, model.ProviderGoogle).
		Return(nil)

	svcErr := suite.service.RevokeAuthorization(testUserID, testAutomationID)
	assert.Nil(suite.T(), svcErr)

	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestBuildAuthorizationURL_FullCatalogWhenNoServices() {
	rawURL, svcErr := suite.service.BuildAuthorizationURL(testAutomationID, testUserID, nil)
	assert.Nil(suite.T(), svcErr)

	query := parseAuthorizationURL(suite.T(), rawURL)
	assert.Equal(suite.T(), testAutomationID, query.Get("automation_id"))
	assert.False(suite.T(), query.Has("services"))
}
