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

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowmart/flowmart/internal/authz/constants"
	"github.com/flowmart/flowmart/internal/authz/model"
	"github.com/flowmart/flowmart/internal/system/database/provider"
	"github.com/flowmart/flowmart/internal/system/log"
	sysutils "github.com/flowmart/flowmart/internal/system/utils"
)

const (
	loggerComponentName = "AuthorizationStore"
	databaseName        = "marketplace"
	scopeDelimiter      = " "
)

// AuthorizationStoreInterface defines the interface for authorization state persistence.
type AuthorizationStoreInterface interface {
	GetAuthorizationRecord(userID, automationID, providerName string) (*model.AuthorizationRecord, error)
	UpsertAuthorizationRecord(record *model.AuthorizationRecord) (*model.AuthorizationRecord, error)
	RevokeAuthorization(userID, automationID, providerName string) error
}

// AuthorizationStore implements the AuthorizationStoreInterface for authorization state.
type AuthorizationStore struct {
	DBProvider provider.DBProviderInterface
}

// NewAuthorizationStore creates a new instance of AuthorizationStore.
func NewAuthorizationStore() AuthorizationStoreInterface {
	return &AuthorizationStore{
		DBProvider: provider.GetDBProvider(),
	}
}

// GetAuthorizationRecord retrieves the authorization record for the given key.
// Returns constants.ErrAuthorizationNotFound when no record exists.
func (as *AuthorizationStore) GetAuthorizationRecord(userID, automationID, providerName string) (
	*model.AuthorizationRecord, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetAuthorizationRecord, userID, automationID, providerName)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, constants.ErrAuthorizationNotFound
	}
	if len(results) != 1 {
		logger.Error("Unexpected number of results for authorization record query")
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildRecordFromResultRow(results[0])
}

// UpsertAuthorizationRecord creates or updates the authorization record for the record's key.
//
// Granted scopes are merged as a set union with whatever is already persisted, so a re-auth
// for one service can never drop scopes granted earlier for another. Credential handles and
// token material are replaced wholesale. Returns the merged record as persisted.
func (as *AuthorizationStore) UpsertAuthorizationRecord(record *model.AuthorizationRecord) (
	*model.AuthorizationRecord, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	handlesJSON, err := json.Marshal(record.CredentialHandles)
	if err != nil {
		logger.Error("Failed to serialize credential handles", log.Error(err))
		return nil, fmt.Errorf("failed to serialize credential handles: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		logger.Error("Failed to begin transaction", log.Error(err))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	rows, err := tx.Query(QueryGetGrantedScopes.Query, record.UserID, record.AutomationID, record.Provider)
	if err != nil {
		logger.Error("Failed to query existing granted scopes", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return nil, fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return nil, fmt.Errorf("failed to query existing granted scopes: %w", err)
	}

	exists := false
	existingScopes := ""
	for rows.Next() {
		exists = true
		if scanErr := rows.Scan(&existingScopes); scanErr != nil {
			if closeErr := rows.Close(); closeErr != nil {
				logger.Error("Failed to close rows", log.Error(closeErr))
			}
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
				return nil, fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
			return nil, fmt.Errorf("failed to scan granted scopes: %w", scanErr)
		}
	}
	if err := rows.Err(); err != nil {
		logger.Error("Failed to iterate granted scopes", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return nil, fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return nil, fmt.Errorf("failed to iterate granted scopes: %w", err)
	}
	if err := rows.Close(); err != nil {
		logger.Error("Failed to close rows", log.Error(err))
	}

	mergedScopes := mergeScopes(sysutils.ParseStringArray(existingScopes, scopeDelimiter), record.GrantedScopes)
	mergedScopesStr := sysutils.StringifyStringArray(mergedScopes, scopeDelimiter)
	updatedAt := time.Now().UTC()

	if exists {
		_, err = tx.Exec(QueryUpdateAuthorizationRecord.Query, record.UserID, record.AutomationID,
			record.Provider, mergedScopesStr, string(handlesJSON), record.AccessToken, record.RefreshToken,
			record.TokenExpiry, updatedAt)
	} else {
		_, err = tx.Exec(QueryInsertAuthorizationRecord.Query, record.UserID, record.AutomationID,
			record.Provider, mergedScopesStr, string(handlesJSON), record.AccessToken, record.RefreshToken,
			record.TokenExpiry, updatedAt)
	}
	if err != nil {
		logger.Error("Failed to persist authorization record", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return nil, fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return nil, fmt.Errorf("failed to persist authorization record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("Failed to commit transaction", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return nil, fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	merged := &model.AuthorizationRecord{
		UserID:            record.UserID,
		AutomationID:      record.AutomationID,
		Provider:          record.Provider,
		GrantedScopes:     mergedScopes,
		CredentialHandles: record.CredentialHandles,
		AccessToken:       record.AccessToken,
		RefreshToken:      record.RefreshToken,
		TokenExpiry:       record.TokenExpiry,
		UpdatedAt:         updatedAt,
	}
	return merged, nil
}

// RevokeAuthorization deletes the authorization record for the given key. Idempotent.
func (as *AuthorizationStore) RevokeAuthorization(userID, automationID, providerName string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteAuthorizationRecord, userID, automationID, providerName)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		logger.Debug("No authorization record found to revoke",
			log.String("userID", userID), log.String("automationID", automationID))
	}

	return nil
}

// mergeScopes unions the new scopes into the existing ones, preserving the existing order
// and appending unseen scopes in their incoming order.
func mergeScopes(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, s := range existing {
		if s != "" && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range incoming {
		if s != "" && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}

func buildRecordFromResultRow(row map[string]interface{}) (*model.AuthorizationRecord, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID, ok := row["user_id"].(string)
	if !ok {
		logger.Error("Failed to parse user_id as string")
		return nil, fmt.Errorf("failed to parse user_id as string")
	}

	automationID, ok := row["automation_id"].(string)
	if !ok {
		logger.Error("Failed to parse automation_id as string")
		return nil, fmt.Errorf("failed to parse automation_id as string")
	}

	providerName, ok := row["provider"].(string)
	if !ok {
		logger.Error("Failed to parse provider as string")
		return nil, fmt.Errorf("failed to parse provider as string")
	}

	grantedScopes, ok := row["granted_scopes"].(string)
	if !ok {
		logger.Error("Failed to parse granted_scopes as string")
		return nil, fmt.Errorf("failed to parse granted_scopes as string")
	}

	handlesJSON, ok := row["credential_handles"].(string)
	if !ok {
		logger.Error("Failed to parse credential_handles as string")
		return nil, fmt.Errorf("failed to parse credential_handles as string")
	}
	credentialHandles := map[string]string{}
	if handlesJSON != "" {
		if err := json.Unmarshal([]byte(handlesJSON), &credentialHandles); err != nil {
			logger.Error("Failed to deserialize credential_handles", log.Error(err))
			return nil, fmt.Errorf("failed to deserialize credential_handles: %w", err)
		}
	}

	accessToken, _ := row["access_token"].(string)
	refreshToken, _ := row["refresh_token"].(string)

	tokenExpiry, err := parseTimeField(row["token_expiry"], "token_expiry")
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTimeField(row["updated_at"], "updated_at")
	if err != nil {
		return nil, err
	}

	record := &model.AuthorizationRecord{
		UserID:            userID,
		AutomationID:      automationID,
		Provider:          providerName,
		GrantedScopes:     sysutils.ParseStringArray(grantedScopes, scopeDelimiter),
		CredentialHandles: credentialHandles,
		AccessToken:       accessToken,
		RefreshToken:      refreshToken,
		TokenExpiry:       tokenExpiry,
		UpdatedAt:         updatedAt,
	}
	return record, nil
}

// parseTimeField handles the driver-dependent representation of timestamp columns.
func parseTimeField(value interface{}, fieldName string) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %s as timestamp: %w", fieldName, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported type for %s: %T", fieldName, value)
	}
}
