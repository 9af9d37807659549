package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/require"
	"github/cloex/go-exchange/internal/api"
)

// GenericPayload is a general purpose map of JSON keys used to build bodies
// for test requests.
type GenericPayload map[string]interface{}

func (g GenericPayload) Reader(t *testing.T) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(g)
	require.NoError(t, err, "failed to serialize payload")

	return bytes.NewReader(b)
}

// PerformRequest runs the given request against the server's echo instance
// and returns the recorded response. A nil body sends an empty request.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body io.Reader, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if headers != nil {
		req.Header = headers
	}
	if body != nil && req.Header.Get(echoHeaderContentType) == "" {
		req.Header.Set(echoHeaderContentType, "application/json")
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

const echoHeaderContentType = "Content-Type"

// ParseResponseBody decodes the recorded JSON response body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Result().Body).Decode(v), "failed to parse response body")
}

// ParseResponseAndValidate decodes the body into v and runs its validation.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)
	require.NoError(t, v.Validate(strfmt.Default), "response validation failed")
}
