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

package google

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ConsentState is the context round-tripped through the provider redirect as the
// OAuth state parameter, base64-JSON encoded.
type ConsentState struct {
	AutomationID string `json:"automationId"`
	UserID       string `json:"userId"`
}

// EncodeConsentState serializes the consent context for the state parameter.
func EncodeConsentState(state ConsentState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to serialize consent state: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeConsentState recovers the consent context from the state parameter.
// Callers treat a decode failure as a consent flow without automation context.
func DecodeConsentState(encoded string) (ConsentState, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ConsentState{}, fmt.Errorf("failed to decode consent state: %w", err)
	}

	var state ConsentState
	if err := json.Unmarshal(data, &state); err != nil {
		return ConsentState{}, fmt.Errorf("failed to deserialize consent state: %w", err)
	}
	return state, nil
}
