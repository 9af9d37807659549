//go:build tools
// +build tools

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github/cloex/go-exchange/internal/chain"
	"github/cloex/go-exchange/internal/config"
	"github/cloex/go-exchange/internal/exchange/convert"
	"github/cloex/go-exchange/internal/exchange/payload"
)

// Standalone diagnostic: checks a submitted transaction by hash and prints
// the current exchange price of each configured share class.
func main() {
	var (
		txHash   = flag.String("tx", "", "Transaction hash to check")
		fullnode = flag.String("fullnode", "", "Fullnode base URL override")
		timeout  = flag.Duration("timeout", 30*time.Second, "Maximum time to wait for confirmation")
	)
	flag.Parse()

	cfg := config.DefaultServiceConfigFromEnv()
	if *fullnode != "" {
		cfg.Chain.FullnodeURL = *fullnode
	}

	client := chain.NewClient(cfg.Chain.FullnodeURL, cfg.Chain.ConfirmPollInterval)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *txHash != "" {
		fmt.Printf("Transaction Hash: %s\n", *txHash)
		if err := client.WaitForTransaction(ctx, *txHash); err != nil {
			fmt.Printf("❌ Transaction did not confirm: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Transaction executed successfully")
		fmt.Println()
	}

	fmt.Println("Configured share classes:")
	priceFunction := payload.FunctionID(cfg.Exchange.ModuleAddress, payload.FuncExchangePrice)
	for _, class := range cfg.Exchange.ShareClasses {
		scaled, err := client.ViewU64(ctx, priceFunction, []interface{}{class.Address})
		if err != nil {
			fmt.Printf("  %s (%s): error: %v\n", class.Name, class.Address, err)
			continue
		}
		fmt.Printf("  %s (%s): price %s USDC (raw %d)\n",
			class.Name, class.Address, convert.DisplayPrice(scaled), scaled)
	}

	if *txHash == "" && len(cfg.Exchange.ShareClasses) == 0 {
		fmt.Println("Nothing to check: no -tx given and no share classes configured")
		flag.Usage()
		os.Exit(1)
	}
}
