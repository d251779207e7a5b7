package errs

// Sentinel errors shared by the command and query use cases
var (
	// Lookup errors
	ErrSupplyOfferNotFound   = New("supply offer not found")
	ErrDemandRequestNotFound = New("demand request not found")
	ErrMatchNotFound         = New("match not found")
	ErrTransactionNotFound   = New("transaction not found")

	// Authorization errors
	ErrNotOwner        = New("caller does not own this resource")
	ErrNotMatchParty   = New("caller is not a party to this match")
	ErrUnauthenticated = New("authentication required")

	// Conflict errors
	ErrSupplyOfferInUse     = New("supply offer is referenced by a match")
	ErrDemandRequestInUse   = New("demand request is referenced by a match")
	ErrMatchHasTransactions = New("match has recorded transactions")
	ErrDuplicateTransaction = New("transaction already recorded")
	ErrGPUTypeMismatch      = New("gpu type mismatch")
	ErrNoCompatibleOffer    = New("no compatible supply offer")
	ErrSettlementFailed     = New("settlement transaction failed on chain")
	ErrMatchCancelled       = New("cancelled match cannot be settled")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrChainUnavailable        = New("chain rpc is not configured")
)
