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

// Package store provides the implementation for automation persistence operations.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowmart/flowmart/internal/automation/constants"
	"github.com/flowmart/flowmart/internal/automation/model"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/database/provider"
	"github.com/flowmart/flowmart/internal/system/log"
	sysutils "github.com/flowmart/flowmart/internal/system/utils"
	"github.com/flowmart/flowmart/internal/workflow/inputs"
)

const (
	loggerComponentName = "AutomationStore"
	databaseName        = "marketplace"
	listDelimiter       = " "
)

// AutomationStoreInterface defines the interface for automation persistence.
type AutomationStoreInterface interface {
	CreateAutomation(automation *model.Automation) error
	GetAutomationList() ([]model.BasicAutomation, error)
	GetAutomation(automationID string) (*model.Automation, error)
	DeleteAutomation(automationID string) error
}

// AutomationStore implements the AutomationStoreInterface for automation persistence.
type AutomationStore struct {
	DBProvider provider.DBProviderInterface
}

// NewAutomationStore creates a new instance of AutomationStore.
func NewAutomationStore() AutomationStoreInterface {
	return &AutomationStore{
		DBProvider: provider.GetDBProvider(),
	}
}

// CreateAutomation persists the automation and its input specs in a single transaction.
func (as *AutomationStore) CreateAutomation(automation *model.Automation) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		logger.Error("Failed to begin transaction", log.Error(err))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	requiredServices := sysutils.StringifyStringArray(serviceNamesToStrings(automation.RequiredServices), listDelimiter)
	developerKeys := sysutils.StringifyStringArray(automation.DeveloperKeys, listDelimiter)

	_, err = tx.Exec(QueryCreateAutomation.Query, automation.ID, automation.Name, automation.Description,
		string(automation.WorkflowJSON), requiredServices, developerKeys, automation.CreatedAt,
		automation.UpdatedAt)
	if err != nil {
		logger.Error("Failed to insert automation", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to insert automation: %w", err)
	}

	for _, input := range automation.Inputs {
		_, err = tx.Exec(QueryCreateAutomationInput.Query, automation.ID, input.Name, string(input.Type))
		if err != nil {
			logger.Error("Failed to insert automation input", log.Error(err))
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
				return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
			}
			return fmt.Errorf("failed to insert automation input: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.Error("Failed to commit transaction", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAutomationList retrieves the listing view of all automations.
func (as *AutomationStore) GetAutomationList() ([]model.BasicAutomation, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetAutomationList)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	automations := make([]model.BasicAutomation, 0, len(results))
	for _, row := range results {
		automation, err := buildBasicAutomationFromResultRow(row)
		if err != nil {
			logger.Error("Failed to build automation from result row", log.Error(err))
			return nil, fmt.Errorf("failed to build automation from result row: %w", err)
		}
		automations = append(automations, *automation)
	}

	return automations, nil
}

// GetAutomation retrieves an automation together with its input specs.
// Returns constants.ErrAutomationNotFound when no automation exists.
func (as *AutomationStore) GetAutomation(automationID string) (*model.Automation, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetAutomationByID, automationID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, constants.ErrAutomationNotFound
	}
	if len(results) != 1 {
		logger.Error("Unexpected number of results for automation query")
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	automation, err := buildAutomationFromResultRow(results[0])
	if err != nil {
		logger.Error("Failed to build automation from result row", log.Error(err))
		return nil, fmt.Errorf("failed to build automation from result row: %w", err)
	}

	inputRows, err := dbClient.Query(QueryGetAutomationInputs, automationID)
	if err != nil {
		logger.Error("Failed to query automation inputs", log.Error(err))
		return nil, fmt.Errorf("failed to query automation inputs: %w", err)
	}

	automation.Inputs = make([]inputs.InputSpec, 0, len(inputRows))
	for _, row := range inputRows {
		name, ok := row["input_name"].(string)
		if !ok {
			logger.Error("Failed to parse input_name as string")
			return nil, fmt.Errorf("failed to parse input_name as string")
		}
		inputType, ok := row["input_type"].(string)
		if !ok {
			logger.Error("Failed to parse input_type as string")
			return nil, fmt.Errorf("failed to parse input_type as string")
		}
		automation.Inputs = append(automation.Inputs, inputs.InputSpec{
			Name: name,
			Type: inputs.InputType(inputType),
		})
	}

	return automation, nil
}

// DeleteAutomation deletes the automation and its inputs. Idempotent.
func (as *AutomationStore) DeleteAutomation(automationID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient(databaseName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		logger.Error("Failed to begin transaction", log.Error(err))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err = tx.Exec(QueryDeleteAutomationInputs.Query, automationID); err != nil {
		logger.Error("Failed to delete automation inputs", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to delete automation inputs: %w", err)
	}

	result, err := tx.Exec(QueryDeleteAutomation.Query, automationID)
	if err != nil {
		logger.Error("Failed to delete automation", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to delete automation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.Error("Failed to commit transaction", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return fmt.Errorf("failed to rollback transaction: %w", rollbackErr)
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if rowsAffected, raErr := result.RowsAffected(); raErr == nil && rowsAffected == 0 {
		logger.Debug("No automation found to delete", log.String("automationID", automationID))
	}

	return nil
}

func buildBasicAutomationFromResultRow(row map[string]interface{}) (*model.BasicAutomation, error) {
	automationID, ok := row["automation_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse automation_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}
	description, _ := row["description"].(string)
	requiredServices, _ := row["required_services"].(string)

	return &model.BasicAutomation{
		ID:               automationID,
		Name:             name,
		Description:      description,
		RequiredServices: stringsToServiceNames(sysutils.ParseStringArray(requiredServices, listDelimiter)),
	}, nil
}

func buildAutomationFromResultRow(row map[string]interface{}) (*model.Automation, error) {
	automationID, ok := row["automation_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse automation_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}
	description, _ := row["description"].(string)

	workflowJSON, ok := row["workflow_json"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse workflow_json as string")
	}

	requiredServices, _ := row["required_services"].(string)
	developerKeys, _ := row["developer_keys"].(string)

	createdAt, err := parseTimeField(row["created_at"], "created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTimeField(row["updated_at"], "updated_at")
	if err != nil {
		return nil, err
	}

	return &model.Automation{
		ID:               automationID,
		Name:             name,
		Description:      description,
		WorkflowJSON:     json.RawMessage(workflowJSON),
		RequiredServices: stringsToServiceNames(sysutils.ParseStringArray(requiredServices, listDelimiter)),
		DeveloperKeys:    sysutils.ParseStringArray(developerKeys, listDelimiter),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func serviceNamesToStrings(services []scope.ServiceName) []string {
	strs := make([]string, 0, len(services))
	for _, service := range services {
		strs = append(strs, string(service))
	}
	return strs
}

func stringsToServiceNames(strs []string) []scope.ServiceName {
	services := make([]scope.ServiceName, 0, len(strs))
	for _, s := range strs {
		services = append(services, scope.ServiceName(s))
	}
	return services
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
