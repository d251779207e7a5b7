package settlement

import (
	"strings"

	"compute-market/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrInvalidWalletAddress = errs.New("invalid wallet address")
	ErrInvalidTxHash        = errs.New("invalid transaction hash")
)

// NormalizeAddress accepts a 0x-prefixed 20-byte hex address and returns
// its EIP-55 checksummed form, so that stored addresses compare byte-for-byte.
func NormalizeAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !has0xPrefix(s) || !common.IsHexAddress(s) {
		return "", ErrInvalidWalletAddress
	}
	return common.HexToAddress(s).Hex(), nil
}

func ValidateWalletAddress(s string) bool {
	_, err := NormalizeAddress(s)
	return err == nil
}

// NormalizeTxHash accepts a 0x-prefixed 32-byte hex hash and lowercases it.
func NormalizeTxHash(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !has0xPrefix(s) {
		return "", ErrInvalidTxHash
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return "", ErrInvalidTxHash
	}
	return hexutil.Encode(b), nil
}

func ValidateTxHash(s string) bool {
	_, err := NormalizeTxHash(s)
	return err == nil
}

func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
