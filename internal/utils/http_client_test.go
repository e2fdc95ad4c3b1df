// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-dashboard/internal/logger"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(logger.Nop())
	client2 := NewHTTPClient(logger.Nop())

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_SendsGetPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	client := NewHTTPClient(logger.Nop())
	resp, err := client.R().SetBody([]byte("ping")).Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "ping", string(resp.Body()))
}

func TestRestyLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	rl := &restyLogger{log: l}

	rl.Warnf("retrying %s", "GET")
	rl.Errorf("failed %d", 1)
	rl.Debugf("debug")

	out := buf.String()
	assert.Contains(t, out, `"component":"resty"`)
	assert.Contains(t, out, "retrying GET")
	assert.Contains(t, out, "failed 1")
}
