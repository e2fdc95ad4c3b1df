// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for a 2xx response and a sentinel-wrapped error
// carrying the server's message otherwise.
func mapHTTPError(resp *Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := errorMessage(resp)
	if err, ok := statusErrors[resp.StatusCode]; ok {
		return fmt.Errorf("%w: %s", err, message)
	}
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, message)
}

// errorMessage prefers the "error" or "message" field of a JSON body and
// falls back to the raw text or the status text.
func errorMessage(resp *Response) string {
	body := resp.Decode()
	if obj, ok := body.JSON.(map[string]any); ok {
		for _, key := range []string{"error", "message"} {
			if msg, ok := obj[key].(string); ok && msg != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(string(resp.Body)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
