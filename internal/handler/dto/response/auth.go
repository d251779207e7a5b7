package response

import "time"

type NonceResponse struct {
	WalletAddress string    `json:"walletAddress"`
	Nonce         string    `json:"nonce"`
	Message       string    `json:"message"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type LoginResponse struct {
	AccessToken   string    `json:"accessToken"`
	WalletAddress string    `json:"walletAddress"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type MeResponse struct {
	WalletAddress string `json:"walletAddress"`
}
