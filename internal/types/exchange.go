package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostCreateShareClassPayload is the request body for creating a share class.
type PostCreateShareClassPayload struct {
	// Token name
	// Required: true
	Name *string `json:"name"`

	// Token symbol
	// Required: true
	Symbol *string `json:"symbol"`

	// Token decimals
	// Required: true
	Decimals *int64 `json:"decimals"`

	// Underlying asset metadata address
	// Required: true
	UnderlyingAsset *string `json:"underlyingAsset"`

	// Price per share, already in the contract's internal scale
	// Required: true
	Price *string `json:"price"`

	// Max supply as u128 decimal string, "0" for unlimited
	MaxSupply string `json:"maxSupply,omitempty"`
}

// Validate validates this post create share class payload
func (m *PostCreateShareClassPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("symbol", "body", m.Symbol); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("decimals", "body", m.Decimals); err != nil {
		res = append(res, err)
	}
	if m.Decimals != nil {
		// on-chain decimals is a u8
		if err := validate.MinimumInt("decimals", "body", *m.Decimals, 0, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumInt("decimals", "body", *m.Decimals, 255, false); err != nil {
			res = append(res, err)
		}
	}
	if err := validate.Required("underlyingAsset", "body", m.UnderlyingAsset); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("price", "body", m.Price); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostInvestPayload is the request body for an issuance request.
type PostInvestPayload struct {
	// Share class metadata address
	// Required: true
	Asset *string `json:"asset"`

	// Investment amount in USDC, human decimal string
	// Required: true
	Amount *string `json:"amount"`
}

// Validate validates this post invest payload
func (m *PostInvestPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostWithdrawPayload is the request body for a redemption request.
type PostWithdrawPayload struct {
	// Share class metadata address
	// Required: true
	Asset *string `json:"asset"`

	// Redemption amount in share tokens, human decimal string. Ignored when
	// withdrawAll is set.
	Amount string `json:"amount,omitempty"`

	// Redeem the full share class balance
	WithdrawAll bool `json:"withdrawAll,omitempty"`
}

// Validate validates this post withdraw payload
func (m *PostWithdrawPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// PostUpdatePricePayload is the request body for a price update.
type PostUpdatePricePayload struct {
	// Share class metadata address
	// Required: true
	Asset *string `json:"asset"`

	// New price per share, already in the contract's internal scale
	// Required: true
	Price *string `json:"price"`
}

// Validate validates this post update price payload
func (m *PostUpdatePricePayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("price", "body", m.Price); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// TransactionResponse carries the hash of a confirmed transaction.
type TransactionResponse struct {
	// Transaction hash
	// Required: true
	Hash *string `json:"hash"`
}

// Validate validates this transaction response
func (m *TransactionResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("hash", "body", m.Hash); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// PriceResponse carries the display price of a share class.
type PriceResponse struct {
	// Share class metadata address
	// Required: true
	Asset *string `json:"asset"`

	// Display price per share, 3 fractional digits
	// Required: true
	Price *string `json:"price"`
}

// Validate validates this price response
func (m *PriceResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("price", "body", m.Price); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// BalanceResponse carries a formatted asset balance.
type BalanceResponse struct {
	// Owner address
	// Required: true
	Owner *string `json:"owner"`

	// Asset metadata address
	// Required: true
	Asset *string `json:"asset"`

	// Balance in display units, 6 fractional digits
	// Required: true
	Balance *string `json:"balance"`

	// Balance with currency label, e.g. "1500.250000 USDC"
	Label string `json:"label,omitempty"`
}

// Validate validates this balance response
func (m *BalanceResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("owner", "body", m.Owner); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("asset", "body", m.Asset); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("balance", "body", m.Balance); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ShareClassItem is a single entry of the share class registry.
type ShareClassItem struct {
	// Display name
	// Required: true
	Name *string `json:"name"`

	// Metadata address
	// Required: true
	Address *string `json:"address"`
}

// Validate validates this share class item
func (m *ShareClassItem) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetShareClassesResponse lists the configured share classes.
type GetShareClassesResponse struct {
	// Share classes
	// Required: true
	ShareClasses []*ShareClassItem `json:"shareClasses"`
}

// Validate validates this get share classes response
func (m *GetShareClassesResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("shareClasses", "body", m.ShareClasses); err != nil {
		res = append(res, err)
	}

	for i := range m.ShareClasses {
		if m.ShareClasses[i] == nil {
			continue
		}
		if err := m.ShareClasses[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
