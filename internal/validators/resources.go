// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

// Field name constants used to specify which fields should be validated.
// They match the JSON names of the validated fields.
const (
	FieldUsername             = "username"
	FieldPassword             = "password"
	FieldRole                 = "role"
	FieldPositionCode         = "position_code"
	FieldPositionName         = "position_name"
	FieldItemID               = "id"
	FieldItemName             = "name"
	FieldItemDescription      = "description"
	FieldUserUpdateFields     = "user_update_fields"
	FieldPositionUpdateFields = "position_update_fields"
)

// ResourceValidator validates credentials and the users, positions and items
// collections. String fields count as empty when they hold only whitespace.
//
// Both value and pointer forms of every model are accepted. With no fields
// given, every field listed as default for the type is checked.
type ResourceValidator struct{}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.Position:
		return v.validatePosition(value, fields...)
	case *models.Position:
		return v.validatePosition(*value, fields...)

	case models.PositionUpdate:
		return v.validatePositionUpdate(value, fields...)
	case *models.PositionUpdate:
		return v.validatePositionUpdate(*value, fields...)

	case models.Item:
		return v.validateItem(value, fields...)
	case *models.Item:
		return v.validateItem(*value, fields...)

	case models.ItemUpdate:
		return v.validateItemUpdate(value, fields...)
	case *models.ItemUpdate:
		return v.validateItemUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *ResourceValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(credentials.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(user.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if blank(user.Role) {
				return ErrEmptyRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate rejects present but blank values. FieldUserUpdateFields
// additionally requires at least one field to be present.
func (v *ResourceValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if update.Username != nil && blank(*update.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if update.Password != nil && *update.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if update.Role != nil && blank(*update.Role) {
				return ErrEmptyRole
			}
		case FieldUserUpdateFields:
			if update.Username == nil && update.Password == nil && update.Role == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validatePosition(position models.Position, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPositionCode, FieldPositionName}
	}

	for _, f := range fields {
		switch f {
		case FieldPositionCode:
			if blank(position.PositionCode) {
				return ErrEmptyPositionCode
			}
		case FieldPositionName:
			if blank(position.PositionName) {
				return ErrEmptyPositionName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validatePositionUpdate(update models.PositionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPositionCode, FieldPositionName}
	}

	for _, f := range fields {
		switch f {
		case FieldPositionCode:
			if update.PositionCode != nil && blank(*update.PositionCode) {
				return ErrEmptyPositionCode
			}
		case FieldPositionName:
			if update.PositionName != nil && blank(*update.PositionName) {
				return ErrEmptyPositionName
			}
		case FieldPositionUpdateFields:
			if update.PositionCode == nil && update.PositionName == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItem checks the raw values: a name of spaces is still a name.
func (v *ResourceValidator) validateItem(item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemName, FieldItemDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldItemName:
			if item.Name == "" {
				return ErrEmptyItemName
			}
		case FieldItemDescription:
			if item.Description == "" {
				return ErrEmptyItemDescription
			}
		case FieldItemID:
			if item.ID == 0 {
				return ErrMissingItemID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateItemUpdate(update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID}
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if update.ID == 0 {
				return ErrMissingItemID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
