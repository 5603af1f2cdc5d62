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

package store

import (
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flowmart/flowmart/internal/automation/constants"
	"github.com/flowmart/flowmart/internal/automation/model"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/database/client"
	dbmodel "github.com/flowmart/flowmart/internal/system/database/model"
	"github.com/flowmart/flowmart/internal/workflow/inputs"
	"github.com/flowmart/flowmart/tests/mocks/databasemock"
)

type AutomationStoreTestSuite struct {
	suite.Suite
	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *AutomationStore
}

func TestAutomationStoreTestSuite(t *testing.T) {
	suite.Run(t, new(AutomationStoreTestSuite))
}

func (suite *AutomationStoreTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	assert.NoError(suite.T(), err)
	suite.db = db
	suite.mock = mock

	dbClient := client.NewDBClient(dbmodel.NewDB(db), "postgres")
	suite.store = &AutomationStore{
		DBProvider: &databasemock.MockDBProvider{
			MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
				return dbClient, nil
			},
		},
	}
}

func (suite *AutomationStoreTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	_ = suite.db.Close()
}

func (suite *AutomationStoreTestSuite) TestCreateAutomation() {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	automation := &model.Automation{
		ID:               "auto-1",
		Name:             "Weekly Report",
		Description:      "Sends a weekly report",
		WorkflowJSON:     json.RawMessage(`{"nodes": [], "connections": {}}`),
		RequiredServices: []scope.ServiceName{scope.ServiceGmail, scope.ServiceSheets},
		Inputs: []inputs.InputSpec{
			{Name: "SHEET_ID", Type: inputs.InputTypeText},
			{Name: "FILE_INPUT", Type: inputs.InputTypeFile},
		},
		DeveloperKeys: []string{"OPENAI_API_KEY"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryCreateAutomation.Query)).
		WithArgs("auto-1", "Weekly Report", "Sends a weekly report",
			`{"nodes": [], "connections": {}}`, "GMAIL SHEETS", "OPENAI_API_KEY", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryCreateAutomationInput.Query)).
		WithArgs("auto-1", "SHEET_ID", "text").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryCreateAutomationInput.Query)).
		WithArgs("auto-1", "FILE_INPUT", "file").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.store.CreateAutomation(automation)
	assert.NoError(suite.T(), err)
}

func (suite *AutomationStoreTestSuite) TestCreateAutomation_InsertErrorRollsBack() {
	automation := &model.Automation{
		ID:           "auto-1",
		Name:         "Weekly Report",
		WorkflowJSON: json.RawMessage(`{}`),
	}

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryCreateAutomation.Query)).
		WillReturnError(sql.ErrConnDone)
	suite.mock.ExpectRollback()

	err := suite.store.CreateAutomation(automation)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to insert automation")
}

func (suite *AutomationStoreTestSuite) TestGetAutomation() {
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

	automationRows := sqlmock.NewRows([]string{"AUTOMATION_ID", "NAME", "DESCRIPTION", "WORKFLOW_JSON",
		"REQUIRED_SERVICES", "DEVELOPER_KEYS", "CREATED_AT", "UPDATED_AT"}).
		AddRow("auto-1", "Weekly Report", "Sends a weekly report",
			`{"nodes": [], "connections": {}}`, "GMAIL SHEETS", "", createdAt, updatedAt)
	inputRows := sqlmock.NewRows([]string{"INPUT_NAME", "INPUT_TYPE"}).
		AddRow("SHEET_ID", "text").
		AddRow("FILE_INPUT", "file")

	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetAutomationByID.Query)).
		WithArgs("auto-1").
		WillReturnRows(automationRows)
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetAutomationInputs.Query)).
		WithArgs("auto-1").
		WillReturnRows(inputRows)

	automation, err := suite.store.GetAutomation("auto-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "auto-1", automation.ID)
	assert.Equal(suite.T(), "Weekly Report", automation.Name)
	assert.JSONEq(suite.T(), `{"nodes": [], "connections": {}}`, string(automation.WorkflowJSON))
	assert.Equal(suite.T(), []scope.ServiceName{scope.ServiceGmail, scope.ServiceSheets},
		automation.RequiredServices)
	assert.Equal(suite.T(), []inputs.InputSpec{
		{Name: "SHEET_ID", Type: inputs.InputTypeText},
		{Name: "FILE_INPUT", Type: inputs.InputTypeFile},
	}, automation.Inputs)
	assert.Empty(suite.T(), automation.DeveloperKeys)
	assert.Equal(suite.T(), createdAt, automation.CreatedAt)
}

func (suite *AutomationStoreTestSuite) TestGetAutomation_NotFound() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetAutomationByID.Query)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"AUTOMATION_ID"}))

	automation, err := suite.store.GetAutomation("missing")
	assert.Nil(suite.T(), automation)
	assert.ErrorIs(suite.T(), err, constants.ErrAutomationNotFound)
}

func (suite *AutomationStoreTestSuite) TestGetAutomationList() {
	rows := sqlmock.NewRows([]string{"AUTOMATION_ID", "NAME", "DESCRIPTION", "REQUIRED_SERVICES"}).
		AddRow("auto-1", "Weekly Report", "Sends a weekly report", "GMAIL SHEETS").
		AddRow("auto-2", "Inbox Digest", "", "GMAIL")

	suite.mock.ExpectQuery(regexp.QuoteMeta(QueryGetAutomationList.Query)).
		WillReturnRows(rows)

	automations, err := suite.store.GetAutomationList()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), automations, 2)
	assert.Equal(suite.T(), model.BasicAutomation{
		ID:               "auto-1",
		Name:             "Weekly Report",
		Description:      "Sends a weekly report",
		RequiredServices: []scope.ServiceName{scope.ServiceGmail, scope.ServiceSheets},
	}, automations[0])
	assert.Equal(suite.T(), []scope.ServiceName{scope.ServiceGmail}, automations[1].RequiredServices)
}

func (suite *AutomationStoreTestSuite) TestDeleteAutomation() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryDeleteAutomationInputs.Query)).
		WithArgs("auto-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryDeleteAutomation.Query)).
		WithArgs("auto-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.store.DeleteAutomation("auto-1")
	assert.NoError(suite.T(), err)
}

func (suite *AutomationStoreTestSuite) TestDeleteAutomation_NoRecordIsIdempotent() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryDeleteAutomationInputs.Query)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectExec(regexp.QuoteMeta(QueryDeleteAutomation.Query)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.store.DeleteAutomation("missing")
	assert.NoError(suite.T(), err)
}
