package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Preview estimate directions.
const (
	PreviewDirectionToShares = "toShares"
	PreviewDirectionToUSDC   = "toUSDC"
)

// PostPreviewPayload selects an asset and optionally requests a conversion
// estimate at its current price.
type PostPreviewPayload struct {
	// Asset metadata address to select
	// Required: true
	Asset *string `json:"asset"`

	// Owner address for the balance lookup, omitted to skip it
	Owner string `json:"owner,omitempty"`

	// Amount to estimate, human decimal string
	Amount string `json:"amount,omitempty"`

	// Estimate direction, one of "toShares" or "toUSDC"
	// Enum: [toShares toUSDC]
	Direction string `json:"direction,omitempty"`
}

// Validate validates this post preview payload
func (m *PostPreviewPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}
	if m.Direction != "" {
		if err := validate.Enum("direction", "body", m.Direction, []interface{}{PreviewDirectionToShares, PreviewDirectionToUSDC}); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PreviewResponse carries the resolved selection and the requested estimate.
type PreviewResponse struct {
	// Selected asset metadata address
	// Required: true
	Asset *string `json:"asset"`

	// Display price per share, empty for the reference asset
	Price string `json:"price,omitempty"`

	// Owner's display balance, empty when no owner was given
	Balance string `json:"balance,omitempty"`

	// Conversion estimate in the requested direction
	Estimate string `json:"estimate,omitempty"`
}

// Validate validates this preview response
func (m *PreviewResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("asset", "body", m.Asset); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}
