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

// Package clientmock provides a mock implementation of the engine client for testing.
package clientmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flowmart/flowmart/internal/engine"
	wfmodel "github.com/flowmart/flowmart/internal/workflow/model"
)

// ClientInterfaceMock is a mock implementation of the engine ClientInterface.
type ClientInterfaceMock struct {
	mock.Mock
}

// CreateWorkflow mocks the CreateWorkflow method.
func (m *ClientInterfaceMock) CreateWorkflow(ctx context.Context, workflow *wfmodel.Workflow) (string, error) {
	args := m.Called(ctx, workflow)
	return args.String(0), args.Error(1)
}

// ActivateWorkflow mocks the ActivateWorkflow method.
func (m *ClientInterfaceMock) ActivateWorkflow(ctx context.Context, workflowID string) error {
	args := m.Called(ctx, workflowID)
	return args.Error(0)
}

// ExecuteWorkflow mocks the ExecuteWorkflow method.
func (m *ClientInterfaceMock) ExecuteWorkflow(ctx context.Context, workflowID string) (string, error) {
	args := m.Called(ctx, workflowID)
	return args.String(0), args.Error(1)
}

// DeleteWorkflow mocks the DeleteWorkflow method.
func (m *ClientInterfaceMock) DeleteWorkflow(ctx context.Context, workflowID string) error {
	args := m.Called(ctx, workflowID)
	return args.Error(0)
}

// CreateGoogleCredential mocks the CreateGoogleCredential method.
func (m *ClientInterfaceMock) CreateGoogleCredential(ctx context.Context,
	credential engine.GoogleCredential) (string, error) {
	args := m.Called(ctx, credential)
	return args.String(0), args.Error(1)
}
