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

package service

import dbmodel "github.com/flowmart/flowmart/internal/system/database/model"

// queryMarketplaceDBTable is the readiness probe query against the marketplace database.
var queryMarketplaceDBTable = dbmodel.DBQuery{
	ID:    "HCQ-HEALTH-01",
	Query: "SELECT 1",
}
