// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// IncidentResponse mirrors a single incident entry returned by the
// incident-query service for a user/company pair.
type IncidentResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
}
