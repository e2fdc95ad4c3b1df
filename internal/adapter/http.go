// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
	"github.com/MKhiriev/go-admin-dashboard/models"
)

// Backend routes.
const (
	loginPath     = "/auth/login"
	registerPath  = "/register"
	usersPath     = "/users"
	positionsPath = "/positions"
	itemsPath     = "/api/crud"
)

type httpServerAdapter struct {
	client *Client
	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter]
// sending every authenticated call through client.
func NewHTTPServerAdapter(client *Client, logger *logger.Logger) ServerAdapter {
	return &httpServerAdapter{client: client, logger: logger}
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	resp, err := h.anonymous(ctx, http.MethodPost, loginPath, credentials)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	pair, ok := parseTokenPair(resp.Body)
	if !ok {
		return models.TokenPair{}, ErrNoAccessToken
	}
	return pair, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	resp, err := h.anonymous(ctx, http.MethodPost, registerPath, credentials)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	pair, _ := parseTokenPair(resp.Body)
	return pair, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := h.call(ctx, http.MethodGet, usersPath, nil, &users)
	return users, err
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := h.call(ctx, http.MethodGet, resourcePath(usersPath, id), nil, &user)
	return user, err
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	err := h.call(ctx, http.MethodPost, usersPath, user, &created)
	return created, err
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	var updated models.User
	err := h.call(ctx, http.MethodPut, resourcePath(usersPath, id), update, &updated)
	return updated, err
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	return h.call(ctx, http.MethodDelete, resourcePath(usersPath, id), nil, nil)
}

func (h *httpServerAdapter) ListPositions(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	err := h.call(ctx, http.MethodGet, positionsPath, nil, &positions)
	return positions, err
}

func (h *httpServerAdapter) GetPosition(ctx context.Context, id int64) (models.Position, error) {
	var position models.Position
	err := h.call(ctx, http.MethodGet, resourcePath(positionsPath, id), nil, &position)
	return position, err
}

func (h *httpServerAdapter) CreatePosition(ctx context.Context, position models.Position) (models.Position, error) {
	var created models.Position
	err := h.call(ctx, http.MethodPost, positionsPath, position, &created)
	return created, err
}

func (h *httpServerAdapter) UpdatePosition(ctx context.Context, id int64, update models.PositionUpdate) (models.Position, error) {
	var updated models.Position
	err := h.call(ctx, http.MethodPut, resourcePath(positionsPath, id), update, &updated)
	return updated, err
}

func (h *httpServerAdapter) DeletePosition(ctx context.Context, id int64) error {
	return h.call(ctx, http.MethodDelete, resourcePath(positionsPath, id), nil, nil)
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := h.call(ctx, http.MethodGet, itemsPath, nil, &items)
	return items, err
}

func (h *httpServerAdapter) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	err := h.call(ctx, http.MethodGet, itemQuery(id), nil, &item)
	return item, err
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item
	err := h.call(ctx, http.MethodPost, itemsPath, item, &created)
	return created, err
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	var updated models.Item
	err := h.call(ctx, http.MethodPut, itemsPath, update, &updated)
	return updated, err
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	var deleted models.Item
	err := h.call(ctx, http.MethodDelete, itemQuery(id), nil, &deleted)
	return deleted, err
}

func (h *httpServerAdapter) Do(ctx context.Context, path string, opts Options) (*Response, error) {
	return h.client.Send(ctx, path, opts)
}

// call sends body through the authenticated client, maps error statuses and
// decodes a JSON response into out when out is non-nil.
func (h *httpServerAdapter) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := h.client.Send(ctx, path, Options{Method: method, Body: body})
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("backend returned an error status")
		return err
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// anonymous sends a request without a bearer token and without the refresh
// cycle.
func (h *httpServerAdapter) anonymous(ctx context.Context, method, path string, body any) (*Response, error) {
	opts := Options{Method: method, Body: body}
	verb, payload, err := prepareOptions(&opts)
	if err != nil {
		return nil, err
	}
	return h.client.do(ctx, verb, path, opts.Headers, payload, "")
}

func resourcePath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

func itemQuery(id int64) string {
	return itemsPath + "?" + url.Values{"id": {strconv.FormatInt(id, 10)}}.Encode()
}
