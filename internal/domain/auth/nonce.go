package auth

import (
	"fmt"
	"strings"
	"time"

	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonceExpired  = errs.New("login nonce expired")
	ErrNonceNotFound = errs.New("login nonce not found")
)

const challengeFormat = "compute-market login\nwallet: %s\nnonce: %s"

// Nonce is a single-use login challenge bound to one wallet.
type Nonce struct {
	walletAddress string
	value         string
	expiresAt     time.Time
}

func NewNonce(walletAddress string, now time.Time, ttl time.Duration) (Nonce, error) {
	wallet, err := settlement.NormalizeAddress(walletAddress)
	if err != nil {
		return Nonce{}, err
	}
	return Nonce{
		walletAddress: wallet,
		value:         strings.ReplaceAll(uuid.NewString(), "-", ""),
		expiresAt:     now.Add(ttl),
	}, nil
}

// ReconstructNonce rebuilds a stored nonce without validation.
func ReconstructNonce(walletAddress, value string, expiresAt time.Time) Nonce {
	return Nonce{walletAddress: walletAddress, value: value, expiresAt: expiresAt}
}

func (n Nonce) WalletAddress() string { return n.walletAddress }
func (n Nonce) Value() string         { return n.value }
func (n Nonce) ExpiresAt() time.Time  { return n.expiresAt }

func (n Nonce) Expired(now time.Time) bool {
	return !now.Before(n.expiresAt)
}

// Message is the exact text the wallet must sign.
func (n Nonce) Message() string {
	return fmt.Sprintf(challengeFormat, n.walletAddress, n.value)
}
