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

// Package service provides the incremental authorization check for automation execution.
package service

import (
	"errors"
	"strings"

	"github.com/flowmart/flowmart/internal/authz/constants"
	"github.com/flowmart/flowmart/internal/authz/model"
	"github.com/flowmart/flowmart/internal/authz/store"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/config"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	sysutils "github.com/flowmart/flowmart/internal/system/utils"
	"github.com/flowmart/flowmart/internal/workflow/detector"
	wfmodel "github.com/flowmart/flowmart/internal/workflow/model"
)

const loggerComponentName = "AuthorizationService"

// AuthorizationServiceInterface defines the interface for incremental authorization checks.
type AuthorizationServiceInterface interface {
	CheckAccess(userID, automationID string, workflowDoc []byte) (
		*model.AccessCheckResult, *serviceerror.ServiceError)
	CheckAccessForServices(userID, automationID string, required []scope.ServiceName) (
		*model.AccessCheckResult, *serviceerror.ServiceError)
	GetAuthorizationRecord(userID, automationID string) (
		*model.AuthorizationRecord, *serviceerror.ServiceError)
	RecordGrant(record *model.AuthorizationRecord) (
		*model.AuthorizationRecord, *serviceerror.ServiceError)
	RevokeAuthorization(userID, automationID string) *serviceerror.ServiceError
	BuildAuthorizationURL(automationID, userID string, services []scope.ServiceName) (
		string, *serviceerror.ServiceError)
}

// AuthorizationService is the default implementation of the AuthorizationServiceInterface.
type AuthorizationService struct {
	AuthzStore store.AuthorizationStoreInterface
	Catalog    *scope.Catalog
}

// NewAuthorizationService creates a new instance of AuthorizationService.
func NewAuthorizationService() AuthorizationServiceInterface {
	return &AuthorizationService{
		AuthzStore: store.NewAuthorizationStore(),
		Catalog:    scope.GetDefaultCatalog(),
	}
}

// CheckAccess determines whether the user has granted every service the workflow needs.
//
// A workflow document that cannot be parsed fails closed: every catalog service is
// reported missing and re-authorization is required. Store errors propagate as server
// errors and are never treated as "no record".
func (as *AuthorizationService) CheckAccess(userID, automationID string, workflowDoc []byte) (
	*model.AccessCheckResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return nil, &constants.ErrorInvalidUserID
	}
	if strings.TrimSpace(automationID) == "" {
		return nil, &constants.ErrorInvalidAutomationID
	}

	workflow, err := wfmodel.Parse(workflowDoc)
	if err != nil {
		logger.Warn("Workflow document is malformed, requiring full re-authorization",
			log.String("automationID", automationID), log.Error(err))
		return as.buildAuthorizationRequired(userID, automationID, as.Catalog.ServiceNames())
	}

	required := detector.DetectRequiredServices(workflow)
	return as.CheckAccessForServices(userID, automationID, required)
}

// CheckAccessForServices runs the incremental authorization check against an already
// detected set of required services. An empty set allows immediately with no store lookup.
func (as *AuthorizationService) CheckAccessForServices(userID, automationID string,
	required []scope.ServiceName) (*model.AccessCheckResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return nil, &constants.ErrorInvalidUserID
	}
	if strings.TrimSpace(automationID) == "" {
		return nil, &constants.ErrorInvalidAutomationID
	}

	if len(required) == 0 {
		return &model.AccessCheckResult{
			HasAllScopes:    true,
			MissingServices: []scope.ServiceName{},
		}, nil
	}

	record, err := as.AuthzStore.GetAuthorizationRecord(userID, automationID, model.ProviderGoogle)
	if err != nil {
		if errors.Is(err, constants.ErrAuthorizationNotFound) {
			return as.buildAuthorizationRequired(userID, automationID, required)
		}
		logger.Error("Failed to load authorization record",
			log.String("userID", userID), log.String("automationID", automationID), log.Error(err))
		return nil, &constants.ErrorStoreUnavailable
	}

	granted := make(map[string]bool, len(record.GrantedScopes))
	for _, uri := range record.GrantedScopes {
		granted[uri] = true
	}

	missing := make([]scope.ServiceName, 0, len(required))
	for _, service := range required {
		if !anyScopeGranted(as.Catalog.ScopesForService(service), granted) {
			missing = append(missing, service)
		}
	}

	if len(missing) > 0 {
		return as.buildAuthorizationRequired(userID, automationID, missing)
	}

	return &model.AccessCheckResult{
		HasAllScopes:    true,
		MissingServices: []scope.ServiceName{},
	}, nil
}

// GetAuthorizationRecord retrieves the authorization record for the user and automation.
func (as *AuthorizationService) GetAuthorizationRecord(userID, automationID string) (
	*model.AuthorizationRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return nil, &constants.ErrorInvalidUserID
	}
	if strings.TrimSpace(automationID) == "" {
		return nil, &constants.ErrorInvalidAutomationID
	}

	record, err := as.AuthzStore.GetAuthorizationRecord(userID, automationID, model.ProviderGoogle)
	if err != nil {
		if errors.Is(err, constants.ErrAuthorizationNotFound) {
			return nil, &constants.ErrorAuthorizationNotFound
		}
		logger.Error("Failed to load authorization record",
			log.String("userID", userID), log.String("automationID", automationID), log.Error(err))
		return nil, &constants.ErrorStoreUnavailable
	}

	return record, nil
}

// RecordGrant persists the outcome of a consent flow. Granted scopes are merged as a
// set union with any previously granted scopes; credential handles replace the old set.
func (as *AuthorizationService) RecordGrant(record *model.AuthorizationRecord) (
	*model.AuthorizationRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if record == nil || strings.TrimSpace(record.UserID) == "" {
		return nil, &constants.ErrorInvalidUserID
	}
	if strings.TrimSpace(record.AutomationID) == "" {
		return nil, &constants.ErrorInvalidAutomationID
	}
	if strings.TrimSpace(record.Provider) == "" {
		return nil, &constants.ErrorInvalidProvider
	}

	merged, err := as.AuthzStore.UpsertAuthorizationRecord(record)
	if err != nil {
		logger.Error("Failed to persist authorization grant",
			log.String("userID", record.UserID), log.String("automationID", record.AutomationID),
			log.Error(err))
		return nil, &constants.ErrorStoreUnavailable
	}

	return merged, nil
}

// RevokeAuthorization deletes the authorization record for the user and automation. Idempotent.
func (as *AuthorizationService) RevokeAuthorization(userID, automationID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(userID) == "" {
		return &constants.ErrorInvalidUserID
	}
	if strings.TrimSpace(automationID) == "" {
		return &constants.ErrorInvalidAutomationID
	}

	if err := as.AuthzStore.RevokeAuthorization(userID, automationID, model.ProviderGoogle); err != nil {
		logger.Error("Failed to revoke authorization",
			log.String("userID", userID), log.String("automationID", automationID), log.Error(err))
		return &constants.ErrorStoreUnavailable
	}

	return nil
}

// BuildAuthorizationURL builds the platform authorization URL for the given services.
// An empty service list omits the services parameter, requesting the full approved catalog.
func (as *AuthorizationService) BuildAuthorizationURL(automationID, userID string,
	services []scope.ServiceName) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	baseURL := config.GetFlowmartRuntime().Config.GateClient.BaseURL + "/authorize"

	queryParams := map[string]string{
		"automation_id": automationID,
		"user_id":       userID,
	}
	if len(services) > 0 {
		names := make([]string, 0, len(services))
		for _, service := range services {
			names = append(names, string(service))
		}
		queryParams["services"] = strings.Join(names, ",")
	}

	authorizationURL, err := sysutils.GetURIWithQueryParams(baseURL, queryParams)
	if err != nil {
		logger.Error("Failed to build authorization URL", log.Error(err))
		return "", &constants.ErrorInternalServerError
	}

	return authorizationURL, nil
}

func (as *AuthorizationService) buildAuthorizationRequired(userID, automationID string,
	missing []scope.ServiceName) (*model.AccessCheckResult, *serviceerror.ServiceError) {
	authorizationURL, svcErr := as.BuildAuthorizationURL(automationID, userID, missing)
	if svcErr != nil {
		return nil, svcErr
	}

	return &model.AccessCheckResult{
		HasAllScopes:     false,
		MissingServices:  missing,
		AuthorizationURL: authorizationURL,
	}, nil
}

func anyScopeGranted(uris []string, granted map[string]bool) bool {
	for _, uri := range uris {
		if granted[uri] {
			return true
		}
	}
	return false
}
