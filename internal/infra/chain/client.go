// Package chain reads ERC-20 USDC state from an EVM JSON-RPC endpoint.
package chain

import (
	"context"

	"compute-market/internal/pkg/config"
	"compute-market/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/ethclient"
)

func Dial(ctx context.Context, cfg config.ChainConfig) (*ethclient.Client, error) {
	if !cfg.Enabled() {
		return nil, errs.ErrChainUnavailable
	}
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to dial chain rpc %s", cfg.RPCURL)
	}
	return client, nil
}
