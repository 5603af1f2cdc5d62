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

import dbmodel "github.com/flowmart/flowmart/internal/system/database/model"

var (
	// QueryCreateAutomation is the query to insert a new automation.
	QueryCreateAutomation = dbmodel.DBQuery{
		ID: "AMQ-AUTO_MGT-01",
		Query: "INSERT INTO AUTOMATION (AUTOMATION_ID, NAME, DESCRIPTION, WORKFLOW_JSON, REQUIRED_SERVICES, " +
			"DEVELOPER_KEYS, CREATED_AT, UPDATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}
	// QueryCreateAutomationInput is the query to insert one input of an automation.
	QueryCreateAutomationInput = dbmodel.DBQuery{
		ID:    "AMQ-AUTO_MGT-02",
		Query: "INSERT INTO AUTOMATION_INPUT (AUTOMATION_ID, INPUT_NAME, INPUT_TYPE) VALUES ($1, $2, $3)",
	}
	// QueryGetAutomationByID is the query to get an automation by ID.
	QueryGetAutomationByID = dbmodel.DBQuery{
		ID: "AMQ-AUTO_MGT-03",
		Query: "SELECT AUTOMATION_ID, NAME, DESCRIPTION, WORKFLOW_JSON, REQUIRED_SERVICES, DEVELOPER_KEYS, " +
			"CREATED_AT, UPDATED_AT FROM AUTOMATION WHERE AUTOMATION_ID = $1",
	}
	// QueryGetAutomationInputs is the query to get the inputs of an automation.
	QueryGetAutomationInputs = dbmodel.DBQuery{
		ID:    "AMQ-AUTO_MGT-04",
		Query: "SELECT INPUT_NAME, INPUT_TYPE FROM AUTOMATION_INPUT WHERE AUTOMATION_ID = $1",
	}
	// QueryGetAutomationList is the query to list automations without their workflow documents.
	QueryGetAutomationList = dbmodel.DBQuery{
		ID:    "AMQ-AUTO_MGT-05",
		Query: "SELECT AUTOMATION_ID, NAME, DESCRIPTION, REQUIRED_SERVICES FROM AUTOMATION",
	}
	// QueryDeleteAutomation is the query to delete an automation.
	QueryDeleteAutomation = dbmodel.DBQuery{
		ID:    "AMQ-AUTO_MGT-06",
		Query: "DELETE FROM AUTOMATION WHERE AUTOMATION_ID = $1",
	}
	// QueryDeleteAutomationInputs is the query to delete the inputs of an automation.
	QueryDeleteAutomationInputs = dbmodel.DBQuery{
		ID:    "AMQ-AUTO_MGT-07",
		Query: "DELETE FROM AUTOMATION_INPUT WHERE AUTOMATION_ID = $1",
	}
)
