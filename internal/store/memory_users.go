// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-admin-dashboard/models"
)

// userRepository is the in-memory implementation of [UserRepository] used by
// the development backend.
type userRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
}

// NewUserRepository constructs an empty in-memory [UserRepository].
func NewUserRepository() UserRepository {
	return &userRepository{
		nextID: 1,
		users:  make(map[int64]models.User),
	}
}

// CreateUser assigns the ID and CreatedAt of user and stores it. Usernames
// are unique case-insensitively.
func (r *userRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usernameTaken(user.Username, 0) {
		return models.User{}, ErrLoginAlreadyExists
	}

	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	user.Password = ""
	r.nextID++
	r.users[user.ID] = user

	return user, nil
}

func (r *userRepository) GetUser(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (r *userRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

// ListUsers returns all users ordered by ID.
func (r *userRepository) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	slices.SortFunc(users, func(a, b models.User) int { return int(a.ID - b.ID) })

	return users, nil
}

// UpdateUser replaces the stored user with the same ID, keeping CreatedAt.
func (r *userRepository) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	if r.usernameTaken(user.Username, user.ID) {
		return models.User{}, ErrLoginAlreadyExists
	}

	user.CreatedAt = stored.CreatedAt
	user.Password = ""
	r.users[user.ID] = user

	return user, nil
}

func (r *userRepository) DeleteUser(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNoUserWasFound
	}
	delete(r.users, id)
	return nil
}

// usernameTaken must be called with r.mu held.
func (r *userRepository) usernameTaken(username string, exceptID int64) bool {
	for id, user := range r.users {
		if id != exceptID && strings.EqualFold(user.Username, username) {
			return true
		}
	}
	return false
}
