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

import "sync"

// FlowmartRuntime holds the runtime configuration for the Flowmart server.
type FlowmartRuntime struct {
	FlowmartHome string `yaml:"flowmart_home"`
	Config       Config `yaml:"config"`
}

var (
	runtimeConfig *FlowmartRuntime
	once          sync.Once
)

// InitializeFlowmartRuntime initializes the FlowmartRuntime configuration.
func InitializeFlowmartRuntime(flowmartHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &FlowmartRuntime{
			FlowmartHome: flowmartHome,
			Config:       *config,
		}
	})

	return nil
}

// GetFlowmartRuntime returns the FlowmartRuntime configuration.
func GetFlowmartRuntime() *FlowmartRuntime {
	if runtimeConfig == nil {
		panic("FlowmartRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetFlowmartRuntime resets the FlowmartRuntime.
// This should only be used in tests to reset the singleton state.
func ResetFlowmartRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
