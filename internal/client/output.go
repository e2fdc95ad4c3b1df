// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-admin-dashboard/internal/adapter"
)

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// printResult prints v unless err is set.
func (a *App) printResult(v any, err error) error {
	if err != nil {
		return err
	}
	return a.printJSON(v)
}

// printBody prints a JSON body indented and a text body verbatim.
func (a *App) printBody(body adapter.Body) error {
	if body.Kind == adapter.KindJSON {
		return a.printJSON(body.JSON)
	}
	_, err := fmt.Fprintln(a.out, body.Text)
	return err
}
