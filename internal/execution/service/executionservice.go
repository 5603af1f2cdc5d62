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

// Package service provides the automation execution business logic.
package service

import (
	"context"
	"strings"
	"time"

	authzmodel "github.com/flowmart/flowmart/internal/authz/model"
	authzservice "github.com/flowmart/flowmart/internal/authz/service"
	automationservice "github.com/flowmart/flowmart/internal/automation/service"
	"github.com/flowmart/flowmart/internal/engine"
	"github.com/flowmart/flowmart/internal/execution/constants"
	"github.com/flowmart/flowmart/internal/execution/model"
	oauthgoogle "github.com/flowmart/flowmart/internal/oauth/google"
	"github.com/flowmart/flowmart/internal/scope"
	"github.com/flowmart/flowmart/internal/system/config"
	"github.com/flowmart/flowmart/internal/system/error/serviceerror"
	"github.com/flowmart/flowmart/internal/system/log"
	"github.com/flowmart/flowmart/internal/system/utils"
	"github.com/flowmart/flowmart/internal/workflow/injector"
	wfmodel "github.com/flowmart/flowmart/internal/workflow/model"
)

const loggerComponentName = "ExecutionService"

// ExecutionServiceInterface defines the interface for automation execution operations.
type ExecutionServiceInterface interface {
	RunAutomation(ctx context.Context, request model.RunRequest) (*model.RunResult, *serviceerror.ServiceError)
}

// ExecutionService is the default implementation of the ExecutionServiceInterface.
type ExecutionService struct {
	AutomationService automationservice.AutomationServiceInterface
	AuthzService      authzservice.AuthorizationServiceInterface
	OAuthService      oauthgoogle.OAuthServiceInterface
	EngineClient      engine.ClientInterface
}

// NewExecutionService creates a new instance of ExecutionService.
func NewExecutionService() ExecutionServiceInterface {
	return &ExecutionService{
		AutomationService: automationservice.NewAutomationService(),
		AuthzService:      authzservice.NewAuthorizationService(),
		OAuthService:      oauthgoogle.NewOAuthService(),
		EngineClient:      engine.NewClient(),
	}
}

// RunAutomation instantiates the automation's workflow template for the user
// and starts an execution in the engine.
//
// The run only proceeds when the user has granted every scope the automation
// requires. Otherwise the result carries the consent URL for the missing
// services and nothing is created in the engine. Engine credentials are
// provisioned lazily per service and reused across runs through the handles
// stored on the authorization record.
func (es *ExecutionService) RunAutomation(ctx context.Context, request model.RunRequest) (
	*model.RunResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if utils.IsBlank(request.UserID) {
		return nil, &constants.ErrorInvalidUserID
	}
	if utils.IsBlank(request.AutomationID) {
		return nil, &constants.ErrorInvalidAutomationID
	}

	automation, svcErr := es.AutomationService.GetAutomation(request.AutomationID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &constants.ErrorAutomationNotFound
		}
		return nil, &constants.ErrorInternalServerError
	}

	access, svcErr := es.AuthzService.CheckAccessForServices(request.UserID, request.AutomationID,
		automation.RequiredServices)
	if svcErr != nil {
		return nil, svcErr
	}
	if !access.HasAllScopes {
		logger.Debug("Run blocked pending authorization",
			log.String("userID", request.UserID), log.String("automationID", request.AutomationID))
		return &model.RunResult{
			Status:           model.RunStatusAuthorizationRequired,
			MissingServices:  access.MissingServices,
			AuthorizationURL: access.AuthorizationURL,
		}, nil
	}

	credentialHandles := map[scope.ServiceName]string{}
	var record *authzmodel.AuthorizationRecord
	if len(automation.RequiredServices) > 0 {
		record, svcErr = es.AuthzService.GetAuthorizationRecord(request.UserID, request.AutomationID)
		if svcErr != nil {
			return nil, svcErr
		}

		record, svcErr = es.refreshTokenIfExpiring(ctx, record)
		if svcErr != nil {
			return nil, svcErr
		}

		credentialHandles, svcErr = es.provisionCredentials(ctx, record, automation.RequiredServices,
			request.UserEmail)
		if svcErr != nil {
			return nil, svcErr
		}
	}

	template, err := wfmodel.Parse(automation.WorkflowJSON)
	if err != nil {
		logger.Error("Stored workflow document no longer parses", log.Error(err),
			log.String("automationID", automation.ID))
		return nil, &constants.ErrorInternalServerError
	}

	engineConfig := config.GetFlowmartRuntime().Config.Engine
	instance, err := injector.Inject(template, injector.Injection{
		InstanceName:      buildInstanceName(request, automation.Name),
		CredentialHandles: credentialHandles,
		ParameterValues:   request.ParameterValues,
		SharedAIHandle:    engineConfig.SharedAICredential,
		DefaultAIModel:    engineConfig.DefaultAIModel,
	})
	if err != nil {
		logger.Error("Failed to instantiate workflow template", log.Error(err),
			log.String("automationID", automation.ID))
		return nil, &constants.ErrorInternalServerError
	}

	workflowID, err := es.EngineClient.CreateWorkflow(ctx, instance)
	if err != nil {
		logger.Error("Failed to create workflow in engine", log.Error(err))
		return nil, &constants.ErrorEngineFailure
	}

	executionID, err := es.EngineClient.ExecuteWorkflow(ctx, workflowID)
	if err != nil {
		logger.Error("Failed to execute workflow in engine", log.Error(err),
			log.String("workflowID", workflowID))
		return nil, &constants.ErrorEngineFailure
	}

	logger.Debug("Automation run started", log.String("automationID", automation.ID),
		log.String("workflowID", workflowID), log.String("executionID", executionID))
	return &model.RunResult{
		Status:      model.RunStatusStarted,
		WorkflowID:  workflowID,
		ExecutionID: executionID,
	}, nil
}

// refreshTokenIfExpiring refreshes the access token when it is expired or
// inside the expiry window, persisting the refreshed token on the record.
func (es *ExecutionService) refreshTokenIfExpiring(ctx context.Context,
	record *authzmodel.AuthorizationRecord) (*authzmodel.AuthorizationRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if !es.OAuthService.IsTokenExpiring(record.TokenExpiry) {
		return record, nil
	}

	token, svcErr := es.OAuthService.RefreshAccessToken(ctx, record.RefreshToken)
	if svcErr != nil {
		return nil, svcErr
	}

	record.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		record.RefreshToken = token.RefreshToken
	}
	record.TokenExpiry = token.Expiry

	updated, svcErr := es.AuthzService.RecordGrant(record)
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Debug("Refreshed access token", log.String("userID", record.UserID),
		log.String("automationID", record.AutomationID),
		log.String("accessToken", log.MaskString(token.AccessToken)))
	return updated, nil
}

// provisionCredentials ensures an engine credential exists for every required
// service, creating missing ones and persisting the new handles.
func (es *ExecutionService) provisionCredentials(ctx context.Context,
	record *authzmodel.AuthorizationRecord, services []scope.ServiceName, userEmail string) (
	map[scope.ServiceName]string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	googleConfig := config.GetFlowmartRuntime().Config.OAuth.Google
	grantedScopes := strings.Join(record.GrantedScopes, " ")

	handles := make(map[scope.ServiceName]string, len(services))
	created := false
	for _, service := range services {
		if handle, ok := record.CredentialHandles[string(service)]; ok && handle != "" {
			handles[service] = handle
			continue
		}

		credentialType, ok := injector.CredentialSlotForService(service)
		if !ok {
			logger.Warn("No engine credential type for service", log.String("service", string(service)))
			continue
		}

		owner := userEmail
		if owner == "" {
			owner = record.UserID
		}
		handle, err := es.EngineClient.CreateGoogleCredential(ctx, engine.GoogleCredential{
			Name:         owner + " - " + string(service),
			Type:         credentialType,
			ClientID:     googleConfig.ClientID,
			ClientSecret: googleConfig.ClientSecret,
			Scope:        grantedScopes,
			Token: engine.OAuthTokenData{
				AccessToken:  record.AccessToken,
				RefreshToken: record.RefreshToken,
				TokenType:    "Bearer",
				ExpiresIn:    expiresInSeconds(record.TokenExpiry),
				Scope:        grantedScopes,
			},
		})
		if err != nil {
			logger.Error("Failed to create engine credential", log.Error(err),
				log.String("service", string(service)))
			return nil, &constants.ErrorCredentialProvisioningFailure
		}

		if record.CredentialHandles == nil {
			record.CredentialHandles = map[string]string{}
		}
		record.CredentialHandles[string(service)] = handle
		handles[service] = handle
		created = true
	}

	if created {
		if _, svcErr := es.AuthzService.RecordGrant(record); svcErr != nil {
			return nil, svcErr
		}
	}

	return handles, nil
}

// buildInstanceName names the workflow instance in the engine so a developer
// can tell instances apart by owner.
func buildInstanceName(request model.RunRequest, automationName string) string {
	owner := request.UserEmail
	if owner == "" {
		owner = request.UserID
	}
	return owner + " - " + automationName
}

func expiresInSeconds(expiry time.Time) int64 {
	if expiry.IsZero() {
		return 0
	}
	seconds := int64(time.Until(expiry).Seconds())
	if seconds < 0 {
		return 0
	}
	return seconds
}
