package exchange

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github/cloex/go-exchange/internal/exchange/classify"
	"github/cloex/go-exchange/internal/exchange/convert"
	"github/cloex/go-exchange/internal/exchange/guard"
	"github/cloex/go-exchange/internal/exchange/payload"
	"github/cloex/go-exchange/internal/exchange/registry"
	"github/cloex/go-exchange/internal/metrics"
	"github/cloex/go-exchange/internal/util"
	"github/cloex/go-exchange/internal/wallet"
)

// Operation names used in logs and metrics.
const (
	opCreateShareClass = "create_share_class"
	opInvest           = "invest"
	opWithdraw         = "withdraw"
	opUpdatePrice      = "update_price"
)

// Service orchestrates the exchange operations: validate, build the payload,
// submit via the wallet bridge, await chain confirmation, classify failures.
type Service interface {
	// CreateShareClass creates a new share class token (admin only).
	CreateShareClass(ctx context.Context, req CreateShareClassRequest) (*Outcome, error)

	// Invest requests issuance of share tokens against a USDC deposit.
	Invest(ctx context.Context, req InvestRequest) (*Outcome, error)

	// Withdraw requests redemption of share tokens for USDC.
	Withdraw(ctx context.Context, req WithdrawRequest) (*Outcome, error)

	// UpdatePrice publishes a new price per share (admin only).
	UpdatePrice(ctx context.Context, req UpdatePriceRequest) (*Outcome, error)

	// Price returns the display price of a share class, 3 fractional digits.
	Price(ctx context.Context, asset string) (string, error)

	// ScaledPrice returns the contract's internal price representation.
	ScaledPrice(ctx context.Context, asset string) (int64, error)

	// Balance returns the owner's display balance of an asset, 6 fractional
	// digits.
	Balance(ctx context.Context, owner string, asset string) (string, error)

	// State returns the controller's current position.
	State() State
}

type service struct {
	cfg      Config
	bridge   wallet.Bridge
	chain    ChainReader
	balances BalanceReader
	registry *registry.Registry
	guard    *guard.Guard
	metrics  *metrics.Service

	mu    sync.Mutex
	state State
}

// NewService creates the operation controller.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(
	cfg Config,
	bridge wallet.Bridge,
	chain ChainReader,
	balances BalanceReader,
	reg *registry.Registry,
	m *metrics.Service,
) Service {
	return &service{
		cfg:      cfg,
		bridge:   bridge,
		chain:    chain,
		balances: balances,
		registry: reg,
		guard:    guard.New(bridge, cfg.ExpectedNetwork, cfg.AddressPrefix, cfg.AdminAddress),
		metrics:  m,
		state:    StateIdle,
	}
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == "" {
		return StateIdle
	}
	return s.state
}

// begin starts a new attempt, refusing when one is already in flight.
func (s *service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != "" && !s.state.terminal() {
		return ErrInFlight
	}
	s.state = StateValidating
	return nil
}

func (s *service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// run drives a single attempt through the state machine. The build callback
// performs the operation-specific validation and returns the payload to
// submit; it must not have side effects.
func (s *service) run(ctx context.Context, op string, build func(ctx context.Context, account *wallet.Account) (payload.Request, error)) (*Outcome, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	log := util.LogFromContext(ctx).With().
		Str("operation", op).
		Str("attempt_id", uuid.New().String()).
		Logger()
	ctx = log.WithContext(ctx)

	account, err := s.guard.CheckWallet(ctx)
	if err != nil {
		return nil, s.fail(log, op, err)
	}
	if err := s.guard.CheckNetwork(ctx); err != nil {
		return nil, s.fail(log, op, err)
	}

	req, err := build(ctx, account)
	if err != nil {
		return nil, s.fail(log, op, err)
	}

	s.setState(StateSubmitting)
	log.Info().Str("function", req.Function).Msg("Requesting signature from wallet")

	result, err := s.bridge.SignAndSubmitTransaction(ctx, req)
	if err != nil {
		return nil, s.fail(log, op, err)
	}

	s.setState(StateConfirming)
	log.Info().Str("tx_hash", result.Hash).Msg("Transaction submitted, awaiting confirmation")

	start := time.Now()
	if err := s.chain.WaitForTransaction(ctx, result.Hash); err != nil {
		return nil, s.fail(log, op, err)
	}
	s.metrics.ConfirmationSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())

	s.setState(StateSucceeded)
	s.metrics.OperationsTotal.WithLabelValues(op, "succeeded").Inc()
	log.Info().Str("tx_hash", result.Hash).Msg("Transaction confirmed")

	return &Outcome{Hash: result.Hash}, nil
}

func (s *service) fail(log zerolog.Logger, op string, err error) error {
	s.setState(StateFailed)
	s.metrics.OperationsTotal.WithLabelValues(op, "failed").Inc()

	opErr := classify.Classify(err)
	log.Warn().Err(err).Str("error_type", string(opErr.Type)).Msg("Operation failed")
	return opErr
}

// CreateShareClass creates a new share class token (admin only).
func (s *service) CreateShareClass(ctx context.Context, req CreateShareClassRequest) (*Outcome, error) {
	return s.run(ctx, opCreateShareClass, func(ctx context.Context, account *wallet.Account) (payload.Request, error) {
		if err := s.guard.CheckAdmin(account); err != nil {
			return payload.Request{}, err
		}
		if req.Name == "" || req.Symbol == "" {
			return payload.Request{}, classify.New(classify.TypeInvalidInput, "Name and symbol are required")
		}
		if err := s.guard.CheckAddress(req.UnderlyingAsset); err != nil {
			return payload.Request{}, err
		}

		price, err := convert.PriceToOnChain(req.Price)
		if err != nil {
			return payload.Request{}, classify.New(classify.TypeInvalidInput, "Please enter a valid price")
		}

		maxSupply := req.MaxSupply
		if maxSupply == "" || maxSupply == "0" {
			maxSupply = "0"
		} else {
			maxSupply, err = convert.ToOnChainUnits(req.MaxSupply, 0)
			if err != nil {
				return payload.Request{}, classify.New(classify.TypeInvalidInput, "Please enter a valid max supply")
			}
		}

		decimals := req.Decimals
		if decimals == 0 {
			decimals = convert.ShareDecimals
		}

		return payload.CreateShareClass(s.cfg.ModuleAddress, req.Name, req.Symbol, decimals, req.UnderlyingAsset, price, maxSupply), nil
	})
}

// Invest requests issuance of share tokens against a USDC deposit.
func (s *service) Invest(ctx context.Context, req InvestRequest) (*Outcome, error) {
	return s.run(ctx, opInvest, func(ctx context.Context, account *wallet.Account) (payload.Request, error) {
		if err := s.guard.CheckAddress(req.Asset); err != nil {
			return payload.Request{}, err
		}
		amount, err := s.guard.CheckAmount(req.Amount)
		if err != nil {
			return payload.Request{}, err
		}

		available, availableDisplay, err := s.availableBalance(ctx, account.Address, s.cfg.USDCMetadata)
		if err != nil {
			return payload.Request{}, err
		}
		if err := s.guard.CheckBalance(amount, available, availableDisplay); err != nil {
			return payload.Request{}, err
		}

		units, err := convert.ToOnChainUnits(req.Amount, convert.USDCDecimals)
		if err != nil {
			return payload.Request{}, classify.New(classify.TypeInvalidInput, "Please enter a valid amount")
		}

		return payload.RequestIssuance(s.cfg.ModuleAddress, req.Asset, units), nil
	})
}

// Withdraw requests redemption of share tokens for USDC.
func (s *service) Withdraw(ctx context.Context, req WithdrawRequest) (*Outcome, error) {
	return s.run(ctx, opWithdraw, func(ctx context.Context, account *wallet.Account) (payload.Request, error) {
		if err := s.guard.CheckAddress(req.Asset); err != nil {
			return payload.Request{}, err
		}

		available, availableDisplay, err := s.availableBalance(ctx, account.Address, req.Asset)
		if err != nil {
			return payload.Request{}, err
		}
		if available.Sign() <= 0 {
			return payload.Request{}, classify.New(classify.TypeInsufficientBalance, "You don't have any tokens to withdraw from this share class")
		}

		amount := req.Amount
		if req.WithdrawAll {
			amount = availableDisplay
		}
		parsed, err := s.guard.CheckAmount(amount)
		if err != nil {
			return payload.Request{}, err
		}
		if err := s.guard.CheckBalance(parsed, available, availableDisplay); err != nil {
			return payload.Request{}, err
		}

		decimals, err := s.assetDecimals(ctx, req.Asset)
		if err != nil {
			return payload.Request{}, err
		}
		units, err := convert.ToOnChainUnits(amount, decimals)
		if err != nil {
			return payload.Request{}, classify.New(classify.TypeInvalidInput, "Please enter a valid amount")
		}

		return payload.RequestRedemption(s.cfg.ModuleAddress, req.Asset, units), nil
	})
}

// UpdatePrice publishes a new price per share (admin only).
func (s *service) UpdatePrice(ctx context.Context, req UpdatePriceRequest) (*Outcome, error) {
	return s.run(ctx, opUpdatePrice, func(ctx context.Context, account *wallet.Account) (payload.Request, error) {
		if err := s.guard.CheckAdmin(account); err != nil {
			return payload.Request{}, err
		}
		if err := s.guard.CheckAddress(req.Asset); err != nil {
			return payload.Request{}, err
		}

		price, err := convert.PriceToOnChain(req.Price)
		if err != nil {
			return payload.Request{}, classify.New(classify.TypeInvalidInput, "Please enter a valid price")
		}

		return payload.UpdatePricePerShare(s.cfg.ModuleAddress, req.Asset, price), nil
	})
}

// ScaledPrice returns the contract's internal price representation for a
// share class.
func (s *service) ScaledPrice(ctx context.Context, asset string) (int64, error) {
	if s.registry.IsUSDC(asset) {
		return 0, classify.New(classify.TypeInvalidInput, "The reference asset has no exchange price")
	}
	if asset == "" {
		return 0, classify.New(classify.TypeInvalidInput, "Asset address is required")
	}

	price, err := s.chain.ViewU64(ctx, payload.FunctionID(s.cfg.ModuleAddress, payload.FuncExchangePrice), []interface{}{asset})
	if err != nil {
		return 0, classify.Classify(err)
	}
	return price, nil
}

// Price returns the display price of a share class, 3 fractional digits.
func (s *service) Price(ctx context.Context, asset string) (string, error) {
	price, err := s.ScaledPrice(ctx, asset)
	if err != nil {
		return "", err
	}
	return convert.DisplayPrice(price), nil
}

// Balance returns the owner's display balance of an asset, 6 fractional
// digits.
func (s *service) Balance(ctx context.Context, owner string, asset string) (string, error) {
	_, display, err := s.availableBalance(ctx, owner, asset)
	if err != nil {
		return "", err
	}
	return display, nil
}

// availableBalance fetches the raw indexer balance and returns it both as a
// parsed display-unit value and a formatted display string.
func (s *service) availableBalance(ctx context.Context, owner string, asset string) (*big.Float, string, error) {
	raw, err := s.balances.Balance(ctx, owner, asset)
	if err != nil {
		return nil, "", classify.Classify(err)
	}

	decimals, err := s.assetDecimals(ctx, asset)
	if err != nil {
		return nil, "", err
	}

	display := convert.FromOnChainUnits(raw, decimals)
	//nolint:mnd // 10 and 256 are standard constants for big.ParseFloat
	parsed, _, err := big.ParseFloat(display, 10, 256, big.ToNearestEven)
	if err != nil {
		parsed = new(big.Float)
	}
	return parsed, display, nil
}

// assetDecimals resolves the decimal count for an asset: 6 for the reference
// stablecoin, indexed metadata otherwise, configured default when the indexer
// has no metadata.
func (s *service) assetDecimals(ctx context.Context, asset string) (int, error) {
	if s.registry.IsUSDC(asset) {
		return convert.USDCDecimals, nil
	}

	decimals, ok, err := s.balances.Decimals(ctx, asset)
	if err != nil {
		return 0, classify.Classify(err)
	}
	if !ok {
		return s.cfg.DefaultAssetDecimals, nil
	}
	return decimals, nil
}
