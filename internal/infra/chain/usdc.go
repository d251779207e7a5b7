package chain

import (
	"context"
	"math/big"
	"strings"
	"time"

	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/errs"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

var parsedERC20 = mustParseABI(erc20ABI)

// TransferTopic identifies ERC-20 Transfer(address,address,uint256) logs.
var TransferTopic = parsedERC20.Events["Transfer"].ID

type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// USDC reads balances from the configured token contract.
type USDC struct {
	caller   ContractCaller
	contract common.Address
	decimals int32
	timeout  time.Duration
}

func NewUSDC(caller ContractCaller, contract string, decimals int32, timeout time.Duration) *USDC {
	return &USDC{
		caller:   caller,
		contract: common.HexToAddress(contract),
		decimals: decimals,
		timeout:  timeout,
	}
}

func (u *USDC) ContractAddress() string {
	return u.contract.Hex()
}

func (u *USDC) USDCBalance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	data, err := parsedERC20.Pack("balanceOf", common.HexToAddress(wallet))
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to pack balanceOf call")
	}

	callCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	out, err := u.caller.CallContract(callCtx, ethereum.CallMsg{To: &u.contract, Data: data}, nil)
	if err != nil {
		return decimal.Zero, errs.Wrapf(err, "failed to read usdc balance of %s", wallet)
	}

	values, err := parsedERC20.Unpack("balanceOf", out)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to unpack balanceOf result")
	}
	if len(values) != 1 {
		return decimal.Zero, errs.New("unexpected balanceOf result length")
	}
	raw, ok := values[0].(*big.Int)
	if !ok {
		return decimal.Zero, errs.New("unexpected balanceOf result type")
	}
	return settlement.FromBaseUnits(raw, u.decimals), nil
}

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
