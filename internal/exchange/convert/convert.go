package convert

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	// bigFloatBase 用于 big.ParseFloat 的基数（十进制）
	bigFloatBase = 10
	// bigFloatPrecision 用于 big.ParseFloat 的精度位数
	bigFloatPrecision = 256
)

const (
	// PriceScale is the contract's internal price granularity: the on-chain
	// price equals display price * 1000.
	PriceScale = 1000

	// USDCDecimals is the decimal count of the reference stablecoin.
	USDCDecimals = 6

	// ShareDecimals is the decimal count share class tokens are created with.
	ShareDecimals = 6

	// DefaultAssetDecimals is assumed when on-chain metadata is unavailable.
	DefaultAssetDecimals = 8

	// DisplayPrecision is the fractional digit count for token quantities.
	DisplayPrecision = 6

	// PriceDisplayPrecision is the fractional digit count for prices.
	PriceDisplayPrecision = 3
)

// ErrInvalidAmount is returned when an input does not parse to a positive
// finite decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

func parseAmount(s string) (*big.Float, error) {
	if s == "" {
		return nil, ErrInvalidAmount
	}
	f, _, err := big.ParseFloat(s, bigFloatBase, bigFloatPrecision, big.ToNearestEven)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if f.IsInf() {
		return nil, ErrInvalidAmount
	}
	return f, nil
}

func pow10(decimals int) *big.Float {
	exp := new(big.Int).Exp(big.NewInt(bigFloatBase), big.NewInt(int64(decimals)), nil)
	return new(big.Float).SetPrec(bigFloatPrecision).SetInt(exp)
}

// ToOnChainUnits converts a human decimal amount into the integer smallest
// unit representation for an asset with the given decimal count, rounding
// down. The amount must be strictly positive.
func ToOnChainUnits(amount string, decimals int) (string, error) {
	f, err := parseAmount(amount)
	if err != nil {
		return "", err
	}
	if f.Sign() <= 0 {
		return "", ErrInvalidAmount
	}

	units := new(big.Float).SetPrec(bigFloatPrecision).Mul(f, pow10(decimals))
	// Int truncates toward zero, which is floor for non-negative values.
	i, _ := units.Int(nil)
	return i.String(), nil
}

// FromOnChainUnits converts a raw integer amount back to a display string
// with 6 fractional digits. Invalid input formats to "0".
func FromOnChainUnits(raw string, decimals int) string {
	f, err := parseAmount(raw)
	if err != nil {
		return "0"
	}
	v := new(big.Float).SetPrec(bigFloatPrecision).Quo(f, pow10(decimals))
	return v.Text('f', DisplayPrecision)
}

// SharesFromInvestment returns the share token quantity obtainable for a
// stablecoin amount at the given on-chain price, as a 6-digit display string.
// Returns "0" for empty input or a non-positive price.
func SharesFromInvestment(usdcAmount string, scaledPrice int64) string {
	if scaledPrice <= 0 {
		return "0"
	}
	amount, err := parseAmount(usdcAmount)
	if err != nil {
		return "0"
	}

	// shares = amount / (scaledPrice / 1000)
	price := new(big.Float).SetPrec(bigFloatPrecision).SetInt64(scaledPrice)
	shares := new(big.Float).SetPrec(bigFloatPrecision).Mul(amount, big.NewFloat(PriceScale).SetPrec(bigFloatPrecision))
	shares.Quo(shares, price)
	return shares.Text('f', DisplayPrecision)
}

// ValueFromShares returns the stablecoin value redeemable for a share token
// quantity at the given on-chain price, as a 6-digit display string.
// Returns "0" for empty input or a non-positive price.
func ValueFromShares(shareAmount string, scaledPrice int64) string {
	if scaledPrice <= 0 {
		return "0"
	}
	amount, err := parseAmount(shareAmount)
	if err != nil {
		return "0"
	}

	// value = shares * scaledPrice / 1000
	value := new(big.Float).SetPrec(bigFloatPrecision).Mul(amount, new(big.Float).SetPrec(bigFloatPrecision).SetInt64(scaledPrice))
	value.Quo(value, big.NewFloat(PriceScale).SetPrec(bigFloatPrecision))
	return value.Text('f', DisplayPrecision)
}

// DisplayPrice converts the contract's internal price representation to the
// display price with 3 fractional digits. Non-positive prices format to "0".
func DisplayPrice(onChainPrice int64) string {
	if onChainPrice <= 0 {
		return "0"
	}
	p := new(big.Float).SetPrec(bigFloatPrecision).SetInt64(onChainPrice)
	p.Quo(p, big.NewFloat(PriceScale).SetPrec(bigFloatPrecision))
	return p.Text('f', PriceDisplayPrecision)
}

// PriceToOnChain converts an operator-entered price to the integer the
// contract expects on write paths: floor of the entered value, with no 1000
// scaling applied. The write path intentionally mirrors the observed contract
// behavior even though the read path divides by 1000.
func PriceToOnChain(displayPrice string) (int64, error) {
	f, err := parseAmount(displayPrice)
	if err != nil {
		return 0, err
	}
	// Int64 saturates at MaxInt64 instead of failing, so floor via a
	// big.Int and bounds-check explicitly.
	z, _ := f.Int(nil)
	if !z.IsInt64() {
		return 0, ErrInvalidAmount
	}
	i := z.Int64()
	if i < 1 {
		return 0, ErrInvalidAmount
	}
	return i, nil
}
