package commands

import (
	"context"
	"log/slog"
	"time"

	"compute-market/internal/domain/auth"
	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/clock"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type NonceChallenge struct {
	WalletAddress string
	Nonce         string
	Message       string
	ExpiresAt     time.Time
}

type LoginResult struct {
	WalletAddress string
	AccessToken   string
	ExpiresAt     time.Time
}

type AuthCommands interface {
	// IssueNonce stores a fresh challenge for wallet, replacing any outstanding one.
	IssueNonce(ctx context.Context, wallet string) (*NonceChallenge, error)
	// Login checks that signature signs the outstanding challenge and consumes it.
	Login(ctx context.Context, wallet, signature string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	tokens   TokenIssuer
	clock    clock.Clock
	nonceTTL time.Duration
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock, nonceTTL time.Duration) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		tokens:   tokens,
		clock:    clk,
		nonceTTL: nonceTTL,
	}
}

func (a *authCommandsImpl) IssueNonce(ctx context.Context, wallet string) (*NonceChallenge, error) {
	nonce, err := auth.NewNonce(wallet, a.clock.Now(), a.nonceTTL)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AuthNonces().Save(ctx, tx.DB(), nonce)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &NonceChallenge{
		WalletAddress: nonce.WalletAddress(),
		Nonce:         nonce.Value(),
		Message:       nonce.Message(),
		ExpiresAt:     nonce.ExpiresAt(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, wallet, signature string) (*LoginResult, error) {
	addr, err := settlement.NormalizeAddress(wallet)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	now := a.clock.Now()

	// A failed check rolls back, leaving the nonce usable until it expires.
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		nonce, err := tx.AuthNonces().Consume(ctx, tx.DB(), addr)
		if err != nil {
			return notFoundAs(err, auth.ErrNonceNotFound)
		}
		if nonce.Expired(now) {
			return auth.ErrNonceExpired
		}
		return auth.VerifySignature(nonce.Message(), signature, addr)
	})
	if err != nil {
		slog.Warn("wallet login rejected", "wallet", addr, "error", err.Error())
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokens.GenerateToken(addr, now)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		WalletAddress: addr,
		AccessToken:   token,
		ExpiresAt:     now.Add(a.tokens.TokenDuration()),
	}, nil
}
