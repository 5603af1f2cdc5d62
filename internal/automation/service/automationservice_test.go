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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowmart/flowmart/internal/automation/constants"
	"github.com/flowmart/flowmart/internal/automation/model"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/scope/validator"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/workflow/inputs"
	"github.com/flowmart/flowmart/tests/mocks/automation/storemock"
)

type AutomationServiceTestSuite struct {
	suite.Suite
	storeMock *storemock.AutomationStoreInterfaceMock
	service   AutomationServiceInterface
}

func TestAutomationServiceSuite(t *testing.T) {
	suite.Run(t, new(AutomationServiceTestSuite))
}

func (suite *AutomationServiceTestSuite) SetupTest() {
	catalog := scope.GetDefaultCatalog()
	suite.storeMock = new(storemock.AutomationStoreInterfaceMock)
	suite.service = &AutomationService{
		AutomationStore: suite.storeMock,
		ScopeValidator:  validator.NewWorkflowScopeValidator(catalog),
		Catalog:         catalog,
	}
}

func (suite *AutomationServiceTestSuite) TestCreateAutomation_Success() {
	doc := `{"nodes": [
		{"name": "Sheets", "type": "n8n-nodes-base.googleSheets",
			"parameters": {"documentId": "{{SHEET_ID}}"}},
		{"name": "Gmail", "type": "n8n-nodes-base.gmail"}
	], "connections": {}}`

	var persisted *model.Automation
	suite.storeMock.On("CreateAutomation", mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(0).(*model.Automation)
	}).Return(nil).Once()

	automation, svcErr := suite.service.CreateAutomation("Weekly Report", "Sends a weekly report", []byte(doc))

	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), automation)
	assert.NotEmpty(suite.T(), automation.ID)
	assert.Equal(suite.T(), "Weekly Report", automation.Name)
	assert.Equal(suite.T(), []scope.ServiceName{scope.ServiceGmail, scope.ServiceSheets},
		automation.RequiredServices)
	assert.Contains(suite.T(), automation.Inputs, inputs.InputSpec{Name: "SHEET_ID", Type: inputs.InputTypeText})
	assert.False(suite.T(), automation.CreatedAt.IsZero())

	assert.NotNil(suite.T(), persisted)
	assert.Equal(suite.T(), automation.ID, persisted.ID)
	suite.storeMock.AssertExpectations(suite.T())
}

func (suite *AutomationServiceTestSuite) TestCreateAutomation_ConvertsEnginePlaceholders() {
	doc := `{"nodes": [{
		"name": "Set",
		"type": "n8n-nodes-base.set",
		"parameters": {"value": "<__PLACEHOLDER_VALUE__Job title__>"}
	}], "connections": {}}`

	suite.storeMock.On("CreateAutomation", mock.Anything).Return(nil).Once()

	automation, svcErr := suite.service.CreateAutomation("Job Poster", "", []byte(doc))

	assert.Nil(suite.T(), svcErr)
	assert.Contains(suite.T(), string(automation.WorkflowJSON), "{{JOB_TITLE}}")
	assert.NotContains(suite.T(), string(automation.WorkflowJSON), "__PLACEHOLDER_VALUE__")
	assert.Contains(suite.T(), automation.Inputs, inputs.InputSpec{Name: "JOB_TITLE", Type: inputs.InputTypeText})
}

func (suite *AutomationServiceTestSuite) TestCreateAutomation_EmptyName() {
	_, svcErr := suite.service.CreateAutomation("  ", "desc", []byte(`{"nodes": [], "connections": {}}`))

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidAutomationName.Code, svcErr.Code)
	suite.storeMock.AssertNotCalled(suite.T(), "CreateAutomation", mock.Anything)
}

func (suite *AutomationServiceTestSuite) TestCreateAutomation_MalformedWorkflow() {
	_, svcErr := suite.service.CreateAutomation("Broken", "", []byte(`{"connections": {}}`))

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorMalformedWorkflow.Code, svcErr.Code)
	suite.storeMock.AssertNotCalled(suite.T(), "CreateAutomation", mock.Anything)
}

func (suite *AutomationServiceTestSuite) TestCreateAutomation_RejectsUnsupportedService() {
	doc := `{"nodes": [
		{"name": "Sheets", "type": "n8n-nodes-base.googleSheets"},
		{"name": "Calendar", "type": "n8n-nodes-base.googleCalendar"}
	], "connections": {}}`

	_, svcErr := suite.service.CreateAutomation("Scheduler", "", []byte(doc))

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorWorkflowValidationFailed.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ClientErrorType, svcErr.Type)
	assert.Contains(suite.T(), svcErr.ErrorDescription, "Google Calendar")
	suite.storeMock.AssertNotCalled(suite.T(), "CreateAutomation", mock.Anything)
}

func (suite *AutomationServiceTestSuite) TestCreateAutomation_StoreError() {
	doc := `{"nodes": [{"name": "Set", "type": "n8n-nodes-base.set"}], "connections": {}}`

	suite.storeMock.On("CreateAutomation", mock.Anything).Return(errors.New("connection refused")).Once()

	_, svcErr := suite.service.CreateAutomation("Plain", "", []byte(doc))

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInternalServerError.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ServerErrorType, svcErr.Type)
}

func (suite *AutomationServiceTestSuite) TestGetAutomation() {
	expected := &model.Automation{ID: "auto-1", Name: "Weekly Report"}
	suite.storeMock.On("GetAutomation", "auto-1").Return(expected, nil).Once()

	automation, svcErr := suite.service.GetAutomation("auto-1")

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), expected, automation)
}

func (suite *AutomationServiceTestSuite) TestGetAutomation_NotFound() {
	suite.storeMock.On("GetAutomation", "missing").Return(nil, constants.ErrAutomationNotFound).Once()

	_, svcErr := suite.service.GetAutomation("missing")

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorAutomationNotFound.Code, svcErr.Code)
	assert.Equal(suite.T(), serviceerror.ClientErrorType, svcErr.Type)
}

func (suite *AutomationServiceTestSuite) TestGetAutomation_EmptyID() {
	_, svcErr := suite.service.GetAutomation("")

	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorInvalidAutomationID.Code, svcErr.Code)
	suite.storeMock.AssertNotCalled(suite.T(), "GetAutomation", mock.Anything)
}

func (suite *AutomationServiceTestSuite) TestGetAutomationList() {
	expected := []model.BasicAutomation{
		{ID: "auto-1", Name: "Weekly Report", RequiredServices: []scope.ServiceName{scope.ServiceSheets}},
		{ID: "auto-2", Name: "Inbox Digest", RequiredServices: []scope.ServiceName{scope.ServiceGmail}},
	}
	suite.storeMock.On("GetAutomationList").Return(expected, nil).Once()

	automations, svcErr := suite.service.GetAutomationList()

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), expected, automations)
}

func (suite *AutomationServiceTestSuite) TestDeleteAutomation() {
	suite.storeMock.On("DeleteAutomation", "auto-1").Return(nil).Once()

	svcErr := suite.service.DeleteAutomation("auto-1")

	assert.Nil(suite.T(), svcErr)
	suite.storeMock.AssertExpectations(suite.T())
}
