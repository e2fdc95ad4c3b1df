// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is an entry of the open /api/crud demo collection.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemUpdate is the body of PUT /api/crud. ID is required; empty Name or
// Description keep the stored value.
type ItemUpdate struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the JSON error body used by the /api/crud route.
type ErrorResponse struct {
	Error string `json:"error"`
}
