package exchange

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github/cloex/go-exchange/internal/exchange/convert"
	"github/cloex/go-exchange/internal/exchange/registry"
	"github/cloex/go-exchange/internal/util"
)

// ErrStaleSelection is returned when the asset selection changed while a
// fetch for a previous selection was still resolving. The stale result is
// discarded, never applied.
var ErrStaleSelection = errors.New("asset selection changed during fetch")

// Selection is the resolved state of the currently selected asset, used for
// live previews.
type Selection struct {
	Asset       string
	ScaledPrice int64
	Price       string
	Balance     string
}

// Session tracks the operator's current asset selection and serves conversion
// previews against its last resolved price. Fetches follow
// last-selection-wins: every Select bumps a generation counter and a resolve
// carrying a stale generation is dropped.
type Session struct {
	svc Service
	reg *registry.Registry

	gen atomic.Uint64

	mu      sync.Mutex
	current *Selection
}

// NewSession creates a preview session on top of the operation controller.
func NewSession(svc Service, reg *registry.Registry) *Session {
	return &Session{svc: svc, reg: reg}
}

// Select resolves price and balance for the given asset and makes it the
// current selection, unless a newer Select was issued meanwhile.
func (s *Session) Select(ctx context.Context, owner string, asset string) (*Selection, error) {
	token := s.gen.Add(1)
	log := util.LogFromContext(ctx)

	sel := &Selection{Asset: asset}

	if !s.reg.IsUSDC(asset) {
		price, err := s.svc.ScaledPrice(ctx, asset)
		if err != nil {
			return nil, err
		}
		sel.ScaledPrice = price
		sel.Price = convert.DisplayPrice(price)
	}

	if owner != "" {
		balance, err := s.svc.Balance(ctx, owner, asset)
		if err != nil {
			return nil, err
		}
		sel.Balance = balance
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != token {
		log.Debug().Str("asset", registry.TruncateAddress(asset)).Msg("Discarding stale selection fetch")
		return nil, ErrStaleSelection
	}
	s.current = sel
	return sel, nil
}

// Current returns the last resolved selection, or nil before the first
// successful Select.
func (s *Session) Current() *Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// EstimateShares previews the share tokens obtainable for a USDC amount at
// the current selection's price. Returns "0" without a resolved selection.
func (s *Session) EstimateShares(usdcAmount string) string {
	sel := s.Current()
	if sel == nil {
		return "0"
	}
	return convert.SharesFromInvestment(usdcAmount, sel.ScaledPrice)
}

// EstimateValue previews the USDC value redeemable for a share token amount
// at the current selection's price. Returns "0" without a resolved selection.
func (s *Session) EstimateValue(shareAmount string) string {
	sel := s.Current()
	if sel == nil {
		return "0"
	}
	return convert.ValueFromShares(shareAmount, sel.ScaledPrice)
}
