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

package log

const (
	// LoggerKeyComponentName is the key used to identify the component name in the logger.
	LoggerKeyComponentName = "component"
	// LoggerKeyUserID is the key used to identify the user ID in the logger.
	LoggerKeyUserID = "userId"
	// LoggerKeyAutomationID is the key used to identify the automation ID in the logger.
	LoggerKeyAutomationID = "automationId"
	// LoggerKeyProvider is the key used to identify the OAuth provider in the logger.
	LoggerKeyProvider = "provider"
)
