//go:build unit || e2e

package builder

import (
	"crypto/ecdsa"

	reqdto "compute-market/internal/handler/dto/request"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// AuthBuilder holds a throwaway wallet key that signs login challenges.
type AuthBuilder struct {
	Key *ecdsa.PrivateKey
}

func NewAuthBuilder() *AuthBuilder {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return &AuthBuilder{Key: key}
}

func (a *AuthBuilder) Wallet() string {
	return crypto.PubkeyToAddress(a.Key.PublicKey).Hex()
}

// Sign produces an EIP-191 personal signature with V in {27, 28}, the way wallets return it.
func (a *AuthBuilder) Sign(message string) string {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), a.Key)
	if err != nil {
		panic(err)
	}
	sig[64] += 27
	return hexutil.Encode(sig)
}

func (a *AuthBuilder) BuildNonceDTO() reqdto.NonceRequest {
	return reqdto.NonceRequest{WalletAddress: a.Wallet()}
}

func (a *AuthBuilder) BuildLoginDTO(message string) reqdto.LoginRequest {
	return reqdto.LoginRequest{
		WalletAddress: a.Wallet(),
		Signature:     a.Sign(message),
	}
}
