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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStringArray(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		delimiter string
		expected  []string
	}{
		{name: "Empty", value: "", delimiter: ",", expected: []string{}},
		{name: "Whitespace", value: "   ", delimiter: ",", expected: []string{}},
		{name: "Single", value: "DRIVE", delimiter: ",", expected: []string{"DRIVE"}},
		{name: "Multiple", value: "DRIVE,SHEETS,GMAIL", delimiter: ",", expected: []string{"DRIVE", "SHEETS", "GMAIL"}},
		{name: "TrimsSpaces", value: " DRIVE , SHEETS ", delimiter: ",", expected: []string{"DRIVE", "SHEETS"}},
		{name: "SkipsEmptyParts", value: "DRIVE,,SHEETS", delimiter: ",", expected: []string{"DRIVE", "SHEETS"}},
		{name: "SpaceDelimited", value: "openid email", delimiter: " ", expected: []string{"openid", "email"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseStringArray(tc.value, tc.delimiter))
		})
	}
}

func TestStringifyStringArray(t *testing.T) {
	assert.Equal(t, "a,b,c", StringifyStringArray([]string{"a", "b", "c"}, ","))
	assert.Equal(t, "", StringifyStringArray(nil, ","))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("value"))
	assert.False(t, IsBlank(" value "))
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	second := GenerateUUID()
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
