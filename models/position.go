// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Position is an entry of the /positions collection.
type Position struct {
	// PositionID is the primary key of the position.
	PositionID int64 `json:"position_id"`

	// PositionCode is the short business code (e.g. "DEV-01").
	PositionCode string `json:"position_code"`

	// PositionName is the human readable name of the position.
	PositionName string `json:"position_name"`
}

// PositionUpdate is a partial update of a [Position].
type PositionUpdate struct {
	PositionCode *string `json:"position_code,omitempty"`
	PositionName *string `json:"position_name,omitempty"`
}
