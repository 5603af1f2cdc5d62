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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
	ResetFlowmartRuntime()
}

func (suite *ConfigTestSuite) TearDownTest() {
	ResetFlowmartRuntime()
}

func (suite *ConfigTestSuite) writeConfigFile(content string) string {
	path := filepath.Join(suite.tempDir, "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(suite.T(), err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := suite.writeConfigFile(`
server:
  hostname: "localhost"
  port: 8090
  http_only: true
gate_client:
  base_url: "https://app.flowmart.io"
cors:
  allowed_origins:
    - "https://app.flowmart.io"
database:
  marketplace:
    type: "sqlite"
    path: "repository/database/marketplace.db"
oauth:
  google:
    client_id: "client-123"
    client_secret: "secret-456"
    redirect_uri: "https://app.flowmart.io/oauth/google/callback"
engine:
  base_url: "http://localhost:5678"
  api_key: "engine-key"
  shared_ai_credential: "shared-llm-1"
  default_ai_model: "openai/gpt-4o-mini"
`)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), cfg)
	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.Equal(suite.T(), 8090, cfg.Server.Port)
	assert.True(suite.T(), cfg.Server.HTTPOnly)
	assert.Equal(suite.T(), "https://app.flowmart.io", cfg.GateClient.BaseURL)
	assert.Equal(suite.T(), []string{"https://app.flowmart.io"}, cfg.CORS.AllowedOrigins)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Marketplace.Type)
	assert.Equal(suite.T(), "client-123", cfg.OAuth.Google.ClientID)
	assert.Equal(suite.T(), "http://localhost:5678", cfg.Engine.BaseURL)
	assert.Equal(suite.T(), "shared-llm-1", cfg.Engine.SharedAICredential)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	cfg, err := LoadConfig(filepath.Join(suite.tempDir, "nonexistent.yaml"))
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeConfigFile("server: [not a mapping")
	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestFlowmartRuntime() {
	cfg := &Config{Server: ServerConfig{Hostname: "example", Port: 9000}}
	err := InitializeFlowmartRuntime("/opt/flowmart", cfg)
	assert.NoError(suite.T(), err)

	runtime := GetFlowmartRuntime()
	assert.Equal(suite.T(), "/opt/flowmart", runtime.FlowmartHome)
	assert.Equal(suite.T(), "example", runtime.Config.Server.Hostname)

	// A second initialize must not replace the existing runtime.
	err = InitializeFlowmartRuntime("/tmp/other", &Config{})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/opt/flowmart", GetFlowmartRuntime().FlowmartHome)
}

func (suite *ConfigTestSuite) TestGetFlowmartRuntimePanicsWhenUninitialized() {
	assert.Panics(suite.T(), func() {
		GetFlowmartRuntime()
	})
}
