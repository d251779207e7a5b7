package request

type NonceRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,startswith=0x,len=42"`
}

type LoginRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,startswith=0x,len=42"`
	Signature     string `json:"signature" binding:"required,startswith=0x"`
}
