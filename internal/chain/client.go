package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github/cloex/go-exchange/internal/util"
)

const defaultConfirmPollInterval = time.Second

// Client reads on-chain state and transaction status from a fullnode's REST
// API. It performs no signing; submission happens through the wallet bridge.
type Client struct {
	baseURL      string
	pollInterval time.Duration
	http         *http.Client
}

// NewClient creates a fullnode client for the given base URL (scheme + host,
// no trailing slash).
func NewClient(baseURL string, pollInterval time.Duration) *Client {
	if pollInterval <= 0 {
		pollInterval = defaultConfirmPollInterval
	}
	return &Client{
		baseURL:      baseURL,
		pollInterval: pollInterval,
		// No Timeout on purpose: confirmation waits are unbounded and are
		// cancelled via ctx only.
		http: &http.Client{},
	}
}

type viewRequest struct {
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

// View executes a read-only contract function and returns its raw return
// values.
func (c *Client) View(ctx context.Context, function string, arguments []interface{}) ([]json.RawMessage, error) {
	if arguments == nil {
		arguments = []interface{}{}
	}
	body, err := json.Marshal(viewRequest{
		Function:      function,
		TypeArguments: []string{},
		Arguments:     arguments,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal view request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/view", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create view request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "view call failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, readAPIError(res)
	}

	var values []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&values); err != nil {
		return nil, errors.Wrap(err, "failed to decode view response")
	}
	return values, nil
}

// ViewU64 executes a view function expected to return a single u64 (encoded
// as a JSON string) and parses it.
func (c *Client) ViewU64(ctx context.Context, function string, arguments []interface{}) (int64, error) {
	values, err := c.View(ctx, function, arguments)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, errors.Errorf("view %s returned no values", function)
	}

	var s string
	if err := json.Unmarshal(values[0], &s); err != nil {
		// Some nodes return small integers unquoted.
		var n int64
		if err := json.Unmarshal(values[0], &n); err != nil {
			return 0, errors.Wrapf(err, "unexpected view return value %s", string(values[0]))
		}
		return n, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse u64 %q", s)
	}
	if n > math.MaxInt64 {
		return 0, errors.Errorf("u64 %q exceeds supported range", s)
	}
	return int64(n), nil
}

type transactionStatus struct {
	Type     string `json:"type"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
}

// WaitForTransaction polls the fullnode until the transaction with the given
// hash leaves the mempool, returning an error if it executed unsuccessfully.
// There is no internal timeout; cancellation is controlled via ctx.
func (c *Client) WaitForTransaction(ctx context.Context, hash string) error {
	log := util.LogFromContext(ctx).With().Str("tx_hash", hash).Logger()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.transactionByHash(ctx, hash)
		if err == nil && status.Type != "pending_transaction" {
			if !status.Success {
				return errors.Errorf("transaction failed: %s", status.VMStatus)
			}
			return nil
		}
		if err != nil {
			// Not found right after submission is expected, keep polling.
			log.Debug().Err(err).Msg("Transaction not yet visible, retrying")
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "confirmation wait cancelled")
		case <-ticker.C:
		}
	}
}

func (c *Client) transactionByHash(ctx context.Context, hash string) (*transactionStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/transactions/by_hash/"+hash, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transaction request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "transaction lookup failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, readAPIError(res)
	}

	var status transactionStatus
	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction response")
	}
	return &status, nil
}

func readAPIError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return errors.Errorf("fullnode returned %d: %s", res.StatusCode, string(body))
}
