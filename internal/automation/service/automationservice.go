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

// Package service provides the automation management business logic.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/flowmart/flowmart/internal/automation/constants"
	"github.com/flowmart/flowmart/internal/automation/model"
	"github.com/flowmart/flowmart/internal/automation/store"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/scope/validator"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	"github.com/flowmart/flowmart/internal/system/utils"
	"github.com/flowmart/flowmart/internal/workflow/detector"
	"github.com/flowmart/flowmart/internal/workflow/inputs"
	wfmodel "github.com/flowmart/flowmart/internal/workflow/model"
)

const loggerComponentName = "AutomationService"

// AutomationServiceInterface defines the interface for automation management operations.
type AutomationServiceInterface interface {
	CreateAutomation(name, description string, workflowDoc []byte) (*model.Automation, *serviceerror.ServiceError)
	GetAutomationList() ([]model.BasicAutomation, *serviceerror.ServiceError)
	GetAutomation(automationID string) (*model.Automation, *serviceerror.ServiceError)
	DeleteAutomation(automationID string) *serviceerror.ServiceError
}

// AutomationService is the default implementation of the AutomationServiceInterface.
type AutomationService struct {
	AutomationStore store.AutomationStoreInterface
	ScopeValidator  validator.WorkflowScopeValidatorInterface
	Catalog         *scope.Catalog
}

// NewAutomationService creates a new instance of AutomationService.
func NewAutomationService() AutomationServiceInterface {
	catalog := scope.GetDefaultCatalog()
	return &AutomationService{
		AutomationStore: store.NewAutomationStore(),
		ScopeValidator:  validator.NewWorkflowScopeValidator(catalog),
		Catalog:         catalog,
	}
}

// CreateAutomation validates the uploaded workflow document against the approved
// scope catalog and persists it together with the metadata derived from it.
//
// The workflow is rejected before anything is stored if it requires a scope
// outside the catalog. Engine placeholder tokens are rewritten into template
// placeholders as part of the upload, so the stored document is ready for
// run-time value substitution.
func (as *AutomationService) CreateAutomation(name, description string, workflowDoc []byte) (
	*model.Automation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if utils.IsBlank(name) {
		return nil, &constants.ErrorInvalidAutomationName
	}

	convertedDoc, _ := inputs.ConvertEnginePlaceholders(workflowDoc)

	workflow, err := wfmodel.Parse(convertedDoc)
	if err != nil {
		logger.Warn("Rejecting malformed workflow document", log.Error(err))
		return nil, &constants.ErrorMalformedWorkflow
	}

	validation := as.ScopeValidator.Validate(workflow)
	if !validation.IsValid {
		logger.Info("Rejecting workflow with unsupported services",
			log.String("name", name))
		return nil, serviceerror.CustomServiceError(constants.ErrorWorkflowValidationFailed, validation.Message)
	}

	userInputs, err := inputs.DetectUserInputs(workflow)
	if err != nil {
		logger.Error("Failed to detect user inputs", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	developerKeys, err := inputs.DetectDeveloperKeys(workflow)
	if err != nil {
		logger.Error("Failed to detect developer keys", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	now := time.Now().UTC()
	automation := &model.Automation{
		ID:               utils.GenerateUUID(),
		Name:             strings.TrimSpace(name),
		Description:      strings.TrimSpace(description),
		WorkflowJSON:     convertedDoc,
		RequiredServices: detector.DetectRequiredServices(workflow),
		Inputs:           userInputs,
		DeveloperKeys:    developerKeys,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := as.AutomationStore.CreateAutomation(automation); err != nil {
		logger.Error("Failed to persist automation", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Created automation", log.String("automationID", automation.ID))
	return automation, nil
}

// GetAutomationList returns the listing view of all automations.
func (as *AutomationService) GetAutomationList() ([]model.BasicAutomation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	automations, err := as.AutomationStore.GetAutomationList()
	if err != nil {
		logger.Error("Failed to list automations", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	return automations, nil
}

// GetAutomation returns the automation with the given ID, including its
// workflow document and input specs.
func (as *AutomationService) GetAutomation(automationID string) (
	*model.Automation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if utils.IsBlank(automationID) {
		return nil, &constants.ErrorInvalidAutomationID
	}

	automation, err := as.AutomationStore.GetAutomation(automationID)
	if err != nil {
		if errors.Is(err, constants.ErrAutomationNotFound) {
			return nil, &constants.ErrorAutomationNotFound
		}
		logger.Error("Failed to get automation", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	return automation, nil
}

// DeleteAutomation deletes the automation with the given ID. Idempotent.
func (as *AutomationService) DeleteAutomation(automationID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if utils.IsBlank(automationID) {
		return &constants.ErrorInvalidAutomationID
	}

	if err := as.AutomationStore.DeleteAutomation(automationID); err != nil {
		logger.Error("Failed to delete automation", log.Error(err))
		return &constants.ErrorInternalServerError
	}
	return nil
}
