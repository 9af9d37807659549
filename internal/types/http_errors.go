package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Public HTTP error types returned in the "type" field of error envelopes.
const (
	PublicHTTPErrorTypeGeneric = "generic"
)

// PublicHTTPError is the public representation of any error returned by the
// API, modeled after RFC 7807.
type PublicHTTPError struct {
	// HTTP status code
	// Required: true
	Code *int64 `json:"status"`

	// Short title of the error
	// Required: true
	Title *string `json:"title"`

	// Type of the error
	// Required: true
	Type *string `json:"type"`

	// Optional human readable detail
	Detail string `json:"detail,omitempty"`
}

// Validate validates this public h t t p error
func (m *PublicHTTPError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", m.Code); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("title", "body", m.Title); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("type", "body", m.Type); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// HTTPValidationErrorDetail describes a single failed payload validation.
type HTTPValidationErrorDetail struct {
	// Error describing field validation failure
	// Required: true
	Error *string `json:"error"`

	// Indicates how the invalid field was provided
	// Required: true
	In *string `json:"in"`

	// Key of field failing validation
	// Required: true
	Key *string `json:"key"`
}

// Validate validates this h t t p validation error detail
func (m *HTTPValidationErrorDetail) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("error", "body", m.Error); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("in", "body", m.In); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("key", "body", m.Key); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PublicHTTPValidationError extends PublicHTTPError with per-field detail.
type PublicHTTPValidationError struct {
	PublicHTTPError

	// List of failed payload validations
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors"`
}

// Validate validates this public h t t p validation error
func (m *PublicHTTPValidationError) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.PublicHTTPError.Validate(formats); err != nil {
		res = append(res, err)
	}

	for i := range m.ValidationErrors {
		if m.ValidationErrors[i] == nil {
			continue
		}
		if err := m.ValidationErrors[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
