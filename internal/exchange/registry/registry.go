package registry

import (
	"strings"
)

// ShareClass is a known share class token of the exchange.
type ShareClass struct {
	Name    string
	Address string
}

// Registry resolves asset addresses to display names. It is static for the
// lifetime of the process; unknown addresses fall back to a truncated form.
type Registry struct {
	usdcMetadata string
	classes      []ShareClass
	byAddress    map[string]ShareClass
}

// New creates a registry over the given USDC metadata address and share
// classes.
func New(usdcMetadata string, classes []ShareClass) *Registry {
	byAddress := make(map[string]ShareClass, len(classes))
	for _, sc := range classes {
		byAddress[strings.ToLower(sc.Address)] = sc
	}
	return &Registry{
		usdcMetadata: usdcMetadata,
		classes:      classes,
		byAddress:    byAddress,
	}
}

// ShareClasses returns the configured share classes in declaration order.
func (r *Registry) ShareClasses() []ShareClass {
	out := make([]ShareClass, len(r.classes))
	copy(out, r.classes)
	return out
}

// IsUSDC reports whether the given address is the reference stablecoin.
func (r *Registry) IsUSDC(address string) bool {
	return strings.EqualFold(address, r.usdcMetadata)
}

// Name returns the display name for an asset address: "USDC" for the
// reference stablecoin, the registered share class name, or a truncated
// address for unknown assets.
func (r *Registry) Name(address string) string {
	if r.IsUSDC(address) {
		return "USDC"
	}
	if sc, ok := r.byAddress[strings.ToLower(address)]; ok {
		return sc.Name
	}
	return TruncateAddress(address)
}

// FormatBalance appends the currency label to a display balance, e.g.
// "1500.250000 USDC" or "12.000000 Tokens".
func (r *Registry) FormatBalance(balance string, address string) string {
	currency := "Tokens"
	if r.IsUSDC(address) {
		currency = "USDC"
	}
	return balance + " " + currency
}

const (
	truncatePrefixLen = 6
	truncateSuffixLen = 4
)

// TruncateAddress shortens an address for display and logs, keeping the first
// 6 and last 4 characters.
func TruncateAddress(address string) string {
	if len(address) <= truncatePrefixLen+truncateSuffixLen {
		return address
	}
	return address[:truncatePrefixLen] + "..." + address[len(address)-truncateSuffixLen:]
}
