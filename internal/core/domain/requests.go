package domain

// BillRequest holds the inputs for creating a deposit bill. Amount is a human decimal string.
type BillRequest struct {
	WalletID    int
	Amount      string
	Currency    string
	Lifetime    int
	TrackingID  string
	CallbackURL string
	SuccessURL  string
	ErrorURL    string
	Address     string
}

// WithdrawalRequest holds the inputs for creating a withdrawal from a virtual wallet.
type WithdrawalRequest struct {
	VirtualWalletID int
	Amount          string
	Currency        string
	Address         string
	UniqueID        int64
	TrackingID      string
	CallbackURL     string
	Message         string
	WithFee         bool
}
