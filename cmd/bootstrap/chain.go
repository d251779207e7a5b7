package bootstrap

import (
	"context"
	"log/slog"

	"compute-market/internal/infra/chain"
	"compute-market/internal/pkg/config"
	"compute-market/internal/usecase/queries"
	"compute-market/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/fx"
)

var ChainModule = fx.Module("chain",
	fx.Provide(
		NewChainClient,
		NewSettlementVerifier,
		NewBalanceReader,
	),
)

// NewChainClient dials the configured RPC endpoint. It returns nil when no
// endpoint is configured; dependants fall back to their offline variants.
func NewChainClient(lc fx.Lifecycle, cfg config.Config) (*ethclient.Client, error) {
	if !cfg.Chain.Enabled() {
		slog.Warn("CHAIN_RPC_URL not set, settlements are trusted and balances unavailable")
		return nil, nil
	}

	client, err := chain.Dial(context.Background(), cfg.Chain)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			client.Close()
			return nil
		},
	})
	return client, nil
}

func NewSettlementVerifier(client *ethclient.Client, cfg config.Config) shared.SettlementVerifier {
	if client == nil {
		return chain.NewTrustingVerifier()
	}
	return chain.NewReceiptVerifier(client, cfg.Chain.USDCContract, cfg.Chain.USDCDecimals, cfg.Chain.CallTimeout)
}

func NewBalanceReader(client *ethclient.Client, cfg config.Config) queries.BalanceReader {
	if client == nil {
		return chain.NewUnavailableBalanceReader(cfg.Chain.USDCContract)
	}
	return chain.NewUSDC(client, cfg.Chain.USDCContract, cfg.Chain.USDCDecimals, cfg.Chain.CallTimeout)
}
