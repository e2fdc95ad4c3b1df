// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyRole            = errors.New("role is required")
	ErrEmptyPositionCode    = errors.New("position code is required")
	ErrEmptyPositionName    = errors.New("position name is required")
	ErrEmptyItemName        = errors.New("item name is required")
	ErrEmptyItemDescription = errors.New("item description is required")
	ErrMissingItemID        = errors.New("item id is required")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
)
