package auth

import (
	"compute-market/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// recoveryIDOffset is the index of V in a 65-byte [R || S || V] signature.
const recoveryIDOffset = 64

var (
	ErrInvalidSignature  = errs.New("invalid signature")
	ErrSignatureMismatch = errs.New("signature does not match wallet")
)

// VerifySignature checks an EIP-191 personal_sign signature of message
// against wallet. Both 0/1 and 27/28 recovery ids are accepted.
func VerifySignature(message, signatureHex, wallet string) error {
	sig, err := hexutil.Decode(signatureHex)
	if err != nil || len(sig) != crypto.SignatureLength {
		return ErrInvalidSignature
	}
	if sig[recoveryIDOffset] >= 27 {
		sig[recoveryIDOffset] -= 27
	}
	if sig[recoveryIDOffset] > 1 {
		return ErrInvalidSignature
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return errs.Mark(err, ErrInvalidSignature)
	}
	if crypto.PubkeyToAddress(*pub) != common.HexToAddress(wallet) {
		return ErrSignatureMismatch
	}
	return nil
}
