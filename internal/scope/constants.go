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

package scope

// ServiceName identifies a logical group of OAuth scopes exposed to users
// as a single external capability.
type ServiceName string

// Service names registered in the default catalog.
const (
	ServiceDrive  ServiceName = "DRIVE"
	ServiceSheets ServiceName = "SHEETS"
	ServiceGmail  ServiceName = "GMAIL"
)

// Services recognized for diagnostics but not approved in the default
// catalog. Workflows needing these are rejected at upload with the service
// named in the reason.
const (
	ServiceDocs      ServiceName = "DOCS"
	ServiceCalendar  ServiceName = "CALENDAR"
	ServiceYouTube   ServiceName = "YOUTUBE"
	ServiceSlides    ServiceName = "SLIDES"
	ServiceForms     ServiceName = "FORMS"
	ServiceTasks     ServiceName = "TASKS"
	ServiceContacts  ServiceName = "CONTACTS"
	ServicePhotos    ServiceName = "PHOTOS"
	ServiceAnalytics ServiceName = "ANALYTICS"
	ServiceAds       ServiceName = "ADS"
)

// Scope URIs approved in the Google Cloud Console OAuth consent screen.
// These must match the console configuration exactly.
const (
	ScopeOpenID          = "openid"
	ScopeUserInfoEmail   = "https://www.googleapis.com/auth/userinfo.email"
	ScopeUserInfoProfile = "https://www.googleapis.com/auth/userinfo.profile"
	ScopeDriveFile       = "https://www.googleapis.com/auth/drive.file"
	ScopeSpreadsheets    = "https://www.googleapis.com/auth/spreadsheets"
	ScopeGmailSend       = "https://www.googleapis.com/auth/gmail.send"
	ScopeGmailCompose    = "https://www.googleapis.com/auth/gmail.addons.current.action.compose"
)
