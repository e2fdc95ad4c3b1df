// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Kind tells how a response body was interpreted by [DecodeBody].
type Kind int

const (
	// KindText is a body that is not a single JSON document.
	KindText Kind = iota
	// KindJSON is a body that parsed as JSON.
	KindJSON
)

func (k Kind) String() string {
	if k == KindJSON {
		return "json"
	}
	return "text"
}

// Body is the decoded form of a response body. Exactly one of JSON and Text
// is meaningful, as selected by Kind.
type Body struct {
	Kind Kind
	// JSON holds the decoded document; numbers are json.Number.
	JSON any
	// Text holds the raw body verbatim.
	Text string
}

// Value returns the decoded document for KindJSON and the text otherwise.
func (b Body) Value() any {
	if b.Kind == KindJSON {
		return b.JSON
	}
	return b.Text
}

// DecodeBody interprets raw as JSON when it parses as exactly one JSON value
// and as verbatim text otherwise. It never fails.
func DecodeBody(raw []byte) Body {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err == nil {
		if _, err = dec.Token(); errors.Is(err, io.EOF) {
			return Body{Kind: KindJSON, JSON: v}
		}
	}

	return Body{Kind: KindText, Text: string(raw)}
}
