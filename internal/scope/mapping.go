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

import "strings"

// scopeURIPattern maps a substring of a Google scope URI to a service name.
type scopeURIPattern struct {
	substring string
	service   ServiceName
}

// Ordered so that more specific patterns win. Covers services beyond the
// approved catalog for diagnostics on unapproved workflows.
var scopeURIPatterns = []scopeURIPattern{
	{"/drive", ServiceDrive},
	{"/spreadsheets", ServiceSheets},
	{"/documents", ServiceDocs},
	{"/gmail", ServiceGmail},
	{"/calendar", ServiceCalendar},
	{"/youtube", ServiceYouTube},
	{"/presentations", ServiceSlides},
	{"/forms", ServiceForms},
	{"/tasks", ServiceTasks},
	{"/contacts", ServiceContacts},
	{"/photoslibrary", ServicePhotos},
	{"/analytics", ServiceAnalytics},
	{"/adwords", ServiceAds},
}

// ServiceForScopeURI maps a scope URI to its service name by URI substring.
// Returns false for URIs that match no known Google service.
func ServiceForScopeURI(uri string) (ServiceName, bool) {
	for _, pattern := range scopeURIPatterns {
		if strings.Contains(uri, pattern.substring) {
			return pattern.service, true
		}
	}
	return "", false
}

// sensitiveScopePattern marks scope URI shapes Google classifies as
// sensitive or restricted.
type sensitiveScopePattern struct {
	fragment string
	suffix   bool
}

var sensitiveScopePatterns = []sensitiveScopePattern{
	{fragment: "/drive", suffix: true},
	{fragment: "/drive.readonly", suffix: true},
	{fragment: "/spreadsheets"},
	{fragment: "/documents"},
	{fragment: "/gmail."},
	{fragment: "/calendar"},
	{fragment: "/youtube"},
	{fragment: "/presentations"},
	{fragment: "/forms."},
	{fragment: "/tasks"},
}

// IsSensitiveScope reports whether the scope URI falls under Google's
// sensitive or restricted classification.
func IsSensitiveScope(uri string) bool {
	for _, pattern := range sensitiveScopePatterns {
		if pattern.suffix {
			if strings.HasSuffix(uri, pattern.fragment) {
				return true
			}
		} else if strings.Contains(uri, pattern.fragment) {
			return true
		}
	}
	return false
}

// serviceDisplayNames covers every service the URI pattern table can
// produce, including services outside the approved catalog.
var serviceDisplayNames = map[ServiceName]string{
	ServiceDrive:     "Google Drive",
	ServiceSheets:    "Google Sheets",
	ServiceGmail:     "Gmail",
	ServiceDocs:      "Google Docs",
	ServiceCalendar:  "Google Calendar",
	ServiceYouTube:   "YouTube",
	ServiceSlides:    "Google Slides",
	ServiceForms:     "Google Forms",
	ServiceTasks:     "Google Tasks",
	ServiceContacts:  "Google Contacts",
	ServicePhotos:    "Google Photos",
	ServiceAnalytics: "Google Analytics",
	ServiceAds:       "Google Ads",
}

// canonicalServiceScopes maps services outside the approved catalog to the
// scope URI their connectors would need. Used to name exactly which scopes
// an unapproved workflow asks for.
var canonicalServiceScopes = map[ServiceName][]string{
	ServiceDocs:      {"https://www.googleapis.com/auth/documents"},
	ServiceCalendar:  {"https://www.googleapis.com/auth/calendar"},
	ServiceYouTube:   {"https://www.googleapis.com/auth/youtube"},
	ServiceSlides:    {"https://www.googleapis.com/auth/presentations"},
	ServiceForms:     {"https://www.googleapis.com/auth/forms.body"},
	ServiceTasks:     {"https://www.googleapis.com/auth/tasks"},
	ServiceContacts:  {"https://www.googleapis.com/auth/contacts"},
	ServicePhotos:    {"https://www.googleapis.com/auth/photoslibrary.readonly"},
	ServiceAnalytics: {"https://www.googleapis.com/auth/analytics.readonly"},
	ServiceAds:       {"https://www.googleapis.com/auth/adwords"},
}

// CanonicalScopesForService returns the scope URIs a service's connectors
// would request when the service is not registered in a catalog.
func CanonicalScopesForService(service ServiceName) []string {
	return canonicalServiceScopes[service]
}

// ServiceDisplayName returns the human-readable name for any service the
// mapping tables know about, falling back to the raw name.
func ServiceDisplayName(service ServiceName) string {
	if name, ok := serviceDisplayNames[service]; ok {
		return name
	}
	return string(service)
}
