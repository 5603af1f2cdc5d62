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

// Package store provides the implementation for authorization state persistence operations.
package store

import dbmodel "github.com/flowmart/flowmart/internal/system/database/model"

var (
	// QueryGetAuthorizationRecord is the query to get an authorization record by its key.
	QueryGetAuthorizationRecord = dbmodel.DBQuery{
		ID: "AZQ-AUTHZ_MGT-01",
		Query: "SELECT USER_ID, AUTOMATION_ID, PROVIDER, GRANTED_SCOPES, CREDENTIAL_HANDLES, ACCESS_TOKEN, " +
			"REFRESH_TOKEN, TOKEN_EXPIRY, UPDATED_AT FROM USER_AUTOMATION " +
			"WHERE USER_ID = $1 AND AUTOMATION_ID = $2 AND PROVIDER = $3",
	}
	// QueryGetGrantedScopes is the query to read the granted scopes for a key inside the upsert transaction.
	QueryGetGrantedScopes = dbmodel.DBQuery{
		ID: "AZQ-AUTHZ_MGT-02",
		Query: "SELECT GRANTED_SCOPES FROM USER_AUTOMATION " +
			"WHERE USER_ID = $1 AND AUTOMATION_ID = $2 AND PROVIDER = $3",
	}
	// QueryInsertAuthorizationRecord is the query to create a new authorization record.
	QueryInsertAuthorizationRecord = dbmodel.DBQuery{
		ID: "AZQ-AUTHZ_MGT-03",
		Query: "INSERT INTO USER_AUTOMATION (USER_ID, AUTOMATION_ID, PROVIDER, GRANTED_SCOPES, " +
			"CREDENTIAL_HANDLES, ACCESS_TOKEN, REFRESH_TOKEN, TOKEN_EXPIRY, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
	}
	// QueryUpdateAuthorizationRecord is the query to update an existing authorization record.
	QueryUpdateAuthorizationRecord = dbmodel.DBQuery{
		ID: "AZQ-AUTHZ_MGT-04",
		Query: "UPDATE USER_AUTOMATION SET GRANTED_SCOPES = $4, CREDENTIAL_HANDLES = $5, ACCESS_TOKEN = $6, " +
			"REFRESH_TOKEN = $7, TOKEN_EXPIRY = $8, UPDATED_AT = $9 " +
			"WHERE USER_ID = $1 AND AUTOMATION_ID = $2 AND PROVIDER = $3",
	}
	// QueryDeleteAuthorizationRecord is the query to delete an authorization record by its key.
	QueryDeleteAuthorizationRecord = dbmodel.DBQuery{
		ID: "AZQ-AUTHZ_MGT-05",
		Query: "DELETE FROM USER_AUTOMATION " +
			"WHERE USER_ID = $1 AND AUTOMATION_ID = $2 AND PROVIDER = $3",
	}
)
