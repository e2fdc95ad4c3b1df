// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultUserRole is assigned to users created without an explicit role.
const DefaultUserRole = "user"

// Credentials is the body of the login and registration requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is a dashboard account managed through the /users collection.
type User struct {
	// ID is the primary key of the user, assigned by the backend.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Password is only sent on create/update and is never returned by the
	// backend.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the backend.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the user ("user", "admin", ...).
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// UserUpdate is a partial update of a [User]. Nil fields are left unchanged.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}
