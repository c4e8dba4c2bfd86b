package domain

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// Envelope is a decoded gateway response.
// Data holds the success payload, Body the whole raw response (lists carry pagination next to data).
type Envelope struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
	Code   FlexString      `json:"code,omitempty"`
	Status int             `json:"-"`
	Body   json.RawMessage `json:"-"`
}

// RequestParams are the optional query string and form body of a gateway call.
type RequestParams struct {
	Query url.Values
	Form  url.Values
}

// FlexString accepts both JSON strings and numbers, the gateway is not consistent about codes and ids.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(strings.TrimSpace(n.String()))
	return nil
}

func (f FlexString) String() string { return string(f) }
