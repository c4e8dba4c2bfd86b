package domain

// RateType selects which gateway rate table is fetched.
type RateType string

const (
	RateTypeDeposit  RateType = "deposit"
	RateTypeWithdraw RateType = "withdraw"
)

// RateCurrency is the currency reference inside a rate entry.
type RateCurrency struct {
	Alpha string `json:"alpha"`
	ISO   int    `json:"iso"`
}

// Rate is one entry of the gateway rate table: 1 unit of From = Rate / 10^Pow units of To.
type Rate struct {
	From RateCurrency `json:"from"`
	To   RateCurrency `json:"to"`
	Rate FlexString   `json:"rate"`
	Pow  int          `json:"pow"`
}

// WireAmount is the integer-scaled representation the gateway expects for monetary fields.
type WireAmount struct {
	Amount string `json:"amount"`
	Pow    int    `json:"pow"`
}
