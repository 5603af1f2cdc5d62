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

// Package scope provides the registry of approved OAuth scopes grouped by
// logical service names, and lookups between scope URIs and services.
package scope

import (
	"strings"
	"sync"

	"github.com/flowmart/flowmart/internal/system/log"
)

const loggerComponentName = "ScopeCatalog"

// Detail holds the user-facing metadata for a single scope URI.
type Detail struct {
	URI                  string
	Name                 string
	Description          string
	Sensitive            bool
	RequiresVerification bool
}

// ServiceEntry groups the scope URIs registered under one service name.
type ServiceEntry struct {
	Name        ServiceName
	DisplayName string
	Scopes      []string
}

// Catalog is the immutable registry of approved scopes. The zero value is
// not usable; construct with NewCatalog or use GetDefaultCatalog.
type Catalog struct {
	basicScopes     []string
	entries         []ServiceEntry
	scopesByService map[ServiceName][]string
	displayNames    map[ServiceName]string
	details         map[string]Detail
}

// NewCatalog builds a catalog from the given basic scopes, service entries
// and per-scope details. Entry order is preserved in scope expansions.
func NewCatalog(basicScopes []string, entries []ServiceEntry, details []Detail) *Catalog {
	scopesByService := make(map[ServiceName][]string, len(entries))
	displayNames := make(map[ServiceName]string, len(entries))
	for _, entry := range entries {
		scopesByService[entry.Name] = entry.Scopes
		displayNames[entry.Name] = entry.DisplayName
	}

	detailsByURI := make(map[string]Detail, len(details))
	for _, detail := range details {
		detailsByURI[detail.URI] = detail
	}

	return &Catalog{
		basicScopes:     basicScopes,
		entries:         entries,
		scopesByService: scopesByService,
		displayNames:    displayNames,
		details:         detailsByURI,
	}
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// GetDefaultCatalog returns the catalog of scopes approved for the platform
// in the Google Cloud Console.
func GetDefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog(
			[]string{ScopeOpenID, ScopeUserInfoEmail, ScopeUserInfoProfile},
			[]ServiceEntry{
				{
					Name:        ServiceDrive,
					DisplayName: "Google Drive",
					Scopes:      []string{ScopeDriveFile},
				},
				{
					Name:        ServiceSheets,
					DisplayName: "Google Sheets",
					Scopes:      []string{ScopeSpreadsheets},
				},
				{
					Name:        ServiceGmail,
					DisplayName: "Gmail",
					Scopes:      []string{ScopeGmailSend, ScopeGmailCompose},
				},
			},
			[]Detail{
				{
					URI:         ScopeOpenID,
					Name:        "OpenID",
					Description: "Verify your identity",
				},
				{
					URI:         ScopeUserInfoEmail,
					Name:        "Email Address",
					Description: "See your email address",
				},
				{
					URI:         ScopeUserInfoProfile,
					Name:        "Profile Info",
					Description: "See your personal info",
				},
				{
					URI:         ScopeDriveFile,
					Name:        "Google Drive (Per-File)",
					Description: "Access only files created by this app",
				},
				{
					URI:                  ScopeSpreadsheets,
					Name:                 "Google Sheets",
					Description:          "Read and write Google Sheets",
					Sensitive:            true,
					RequiresVerification: true,
				},
				{
					URI:                  ScopeGmailSend,
					Name:                 "Gmail (Send)",
					Description:          "Send emails on your behalf",
					Sensitive:            true,
					RequiresVerification: true,
				},
				{
					URI:         ScopeGmailCompose,
					Name:        "Gmail (Compose in Add-on)",
					Description: "Compose emails in Gmail add-on",
				},
			},
		)
	})
	return defaultCatalog
}

// ServiceNames returns the registered service names in catalog order.
func (c *Catalog) ServiceNames() []ServiceName {
	names := make([]ServiceName, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.Name)
	}
	return names
}

// HasService reports whether the service name is registered in the catalog.
func (c *Catalog) HasService(service ServiceName) bool {
	_, ok := c.scopesByService[service]
	return ok
}

// ScopesForService returns the scope URIs registered under the service,
// without the basic scopes.
func (c *Catalog) ScopesForService(service ServiceName) []string {
	scopes := c.scopesByService[service]
	result := make([]string, len(scopes))
	copy(result, scopes)
	return result
}

// ScopesForServices expands the given services to their scope URIs. The
// basic identity scopes are always included, duplicates are removed and
// unknown services are skipped.
func (c *Catalog) ScopesForServices(services []ServiceName) []string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	scopes := make([]string, 0, len(c.basicScopes)+len(services))
	seen := make(map[string]struct{})
	appendScope := func(uri string) {
		if _, ok := seen[uri]; ok {
			return
		}
		seen[uri] = struct{}{}
		scopes = append(scopes, uri)
	}

	for _, uri := range c.basicScopes {
		appendScope(uri)
	}
	for _, service := range services {
		serviceScopes, ok := c.scopesByService[ServiceName(strings.ToUpper(string(service)))]
		if !ok {
			logger.Warn("Unknown service in scope expansion", log.String("service", string(service)))
			continue
		}
		for _, uri := range serviceScopes {
			appendScope(uri)
		}
	}

	return scopes
}

// AllScopes returns every scope URI in the catalog, basic scopes first,
// then each service's scopes in catalog order.
func (c *Catalog) AllScopes() []string {
	services := make([]ServiceName, 0, len(c.entries))
	for _, entry := range c.entries {
		services = append(services, entry.Name)
	}
	return c.ScopesForServices(services)
}

// DisplayName returns the human-readable name of a service. Unregistered
// services fall back to the raw name.
func (c *Catalog) DisplayName(service ServiceName) string {
	if name, ok := c.displayNames[service]; ok {
		return name
	}
	return ServiceDisplayName(service)
}

// DisplayNames returns the human-readable names for the given services.
func (c *Catalog) DisplayNames(services []ServiceName) []string {
	names := make([]string, 0, len(services))
	for _, service := range services {
		names = append(names, c.DisplayName(service))
	}
	return names
}

// ScopeDetail returns the metadata for a scope URI. Unknown URIs return a
// detail carrying only the URI itself.
func (c *Catalog) ScopeDetail(uri string) Detail {
	if detail, ok := c.details[uri]; ok {
		return detail
	}
	return Detail{URI: uri, Name: uri, Description: "Access Google services"}
}

// RequiresVerification reports whether any of the given scope URIs needs
// Google's app verification before it can be granted in production.
func (c *Catalog) RequiresVerification(uris []string) bool {
	for _, uri := range uris {
		if c.ScopeDetail(uri).RequiresVerification {
			return true
		}
	}
	return false
}
