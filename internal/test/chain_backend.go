package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// ChainBackend is an in-memory stand-in for the fullnode REST API and the
// indexer GraphQL endpoint. Handlers are safe for concurrent use.
type ChainBackend struct {
	mu sync.Mutex

	// ScaledPrices maps asset address to the raw on-chain exchange_price value.
	ScaledPrices map[string]int64
	// Balances maps "owner|asset" to the raw integer amount string.
	Balances map[string]string
	// Decimals maps asset address to its metadata decimal count.
	Decimals map[string]int

	// FailedTxStatus, when set, makes every transaction lookup report an
	// unsuccessful execution with this vm_status.
	FailedTxStatus string
}

func NewChainBackend() *ChainBackend {
	return &ChainBackend{
		ScaledPrices: map[string]int64{},
		Balances:     map[string]string{},
		Decimals:     map[string]int{},
	}
}

func (b *ChainBackend) SetScaledPrice(asset string, price int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ScaledPrices[strings.ToLower(asset)] = price
}

func (b *ChainBackend) SetBalance(owner string, asset string, rawAmount string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Balances[strings.ToLower(owner)+"|"+strings.ToLower(asset)] = rawAmount
}

func (b *ChainBackend) SetDecimals(asset string, decimals int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Decimals[strings.ToLower(asset)] = decimals
}

// FullnodeHandler serves the /v1/view and /v1/transactions/by_hash endpoints
// the fullnode client depends on.
func (b *ChainBackend) FullnodeHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/view", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Function  string        `json:"function"`
			Arguments []interface{} `json:"arguments"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if strings.HasSuffix(body.Function, "::exchange_price") && len(body.Arguments) == 1 {
			asset, _ := body.Arguments[0].(string)
			b.mu.Lock()
			price, ok := b.ScaledPrices[strings.ToLower(asset)]
			b.mu.Unlock()
			if !ok {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"message":    "Move abort: share class not found",
					"error_code": "invalid_input",
				})
				return
			}
			writeJSON(w, http.StatusOK, []string{fmt.Sprintf("%d", price)})
			return
		}

		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "unknown view function"})
	})

	mux.HandleFunc("/v1/transactions/by_hash/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		vmStatus := b.FailedTxStatus
		b.mu.Unlock()

		if vmStatus != "" {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"type":      "user_transaction",
				"success":   false,
				"vm_status": vmStatus,
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"type":      "user_transaction",
			"success":   true,
			"vm_status": "Executed successfully",
		})
	})

	return mux
}

// IndexerHandler serves the GraphQL queries the indexer client issues,
// dispatching on the operation name in the query string.
func (b *ChainBackend) IndexerHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		switch {
		case strings.Contains(body.Query, "current_fungible_asset_balances"):
			key := strings.ToLower(body.Variables["owner"]) + "|" + strings.ToLower(body.Variables["asset"])
			rows := []map[string]interface{}{}
			if amount, ok := b.Balances[key]; ok {
				rows = append(rows, map[string]interface{}{"amount": amount})
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"data": map[string]interface{}{"current_fungible_asset_balances": rows},
			})
		case strings.Contains(body.Query, "fungible_asset_metadata"):
			rows := []map[string]interface{}{}
			if decimals, ok := b.Decimals[strings.ToLower(body.Variables["asset"])]; ok {
				rows = append(rows, map[string]interface{}{"decimals": decimals})
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"data": map[string]interface{}{"fungible_asset_metadata": rows},
			})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"errors": []map[string]string{{"message": "unknown query"}},
			})
		}
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck
	json.NewEncoder(w).Encode(v)
}
