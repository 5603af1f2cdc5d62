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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/flowmart/flowmart/internal/system/constants"
	"github.com/flowmart/flowmart/internal/system/healthcheck/model"
	"github.com/flowmart/flowmart/tests/mocks/healthcheck/providermock"
	"github.com/flowmart/flowmart/tests/mocks/healthcheck/servicemock"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	handler      *HealthCheckHandler
	mockService  *servicemock.HealthCheckServiceInterfaceMock
	mockProvider *providermock.HealthCheckProviderInterfaceMock
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (suite *HealthCheckHandlerTestSuite) SetupTest() {
	suite.mockService = &servicemock.HealthCheckServiceInterfaceMock{}
	suite.mockProvider = &providermock.HealthCheckProviderInterfaceMock{}
	suite.mockProvider.On("GetHealthCheckService").Return(suite.mockService)
	suite.handler = &HealthCheckHandler{Provider: suite.mockProvider}
}

func (suite *HealthCheckHandlerTestSuite) TestHandleLivenessRequest() {
	req := httptest.NewRequest("GET", "/health/liveness", nil)
	rec := httptest.NewRecorder()

	suite.handler.HandleLivenessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequest_Up() {
	req := httptest.NewRequest("GET", "/health/readiness", nil)
	rec := httptest.NewRecorder()

	serverStatus := model.ServerStatus{
		Status: model.StatusUp,
		ServiceStatus: []model.ServiceStatus{
			{ServiceName: "MarketplaceDB", Status: model.StatusUp},
		},
	}
	suite.mockService.On("CheckReadiness").Return(serverStatus)

	suite.handler.HandleReadinessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), constants.ContentTypeJSON, rec.Header().Get(constants.ContentTypeHeaderName))

	var response model.ServerStatus
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.StatusUp, response.Status)
	assert.Len(suite.T(), response.ServiceStatus, 1)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequest_Down() {
	req := httptest.NewRequest("GET", "/health/readiness", nil)
	rec := httptest.NewRecorder()

	serverStatus := model.ServerStatus{
		Status: model.StatusDown,
		ServiceStatus: []model.ServiceStatus{
			{ServiceName: "MarketplaceDB", Status: model.StatusDown},
		},
	}
	suite.mockService.On("CheckReadiness").Return(serverStatus)

	suite.handler.HandleReadinessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, rec.Code)

	var response model.ServerStatus
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), model.StatusDown, response.Status)

	suite.mockService.AssertExpectations(suite.T())
}
