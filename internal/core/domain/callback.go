package domain

import (
	"encoding/json"
	"time"
)

// CallbackKind distinguishes deposit (bill) callbacks from withdrawal callbacks.
type CallbackKind string

const (
	CallbackKindBill       CallbackKind = "bill"
	CallbackKindWithdrawal CallbackKind = "withdrawal"
)

// CallbackSign is the signature block the gateway attaches to every callback.
type CallbackSign struct {
	Time string `json:"time" binding:"required"`
	Hash string `json:"hash" binding:"required"`
}

// Callback is a webhook notification. Only the fields needed for verification and
// de-duplication are decoded; Payload keeps the whole body untouched.
type Callback struct {
	ID              FlexString      `json:"id" binding:"required"`
	VirtualWalletID FlexString      `json:"virtual_wallet_id"`
	Status          FlexString      `json:"status"`
	Sign            CallbackSign    `json:"sign" binding:"required"`
	Payload         json.RawMessage `json:"-"`
}

// Kind classifies the callback: withdrawals carry a virtual wallet id, bills do not.
func (c Callback) Kind() CallbackKind {
	if c.VirtualWalletID != "" && c.VirtualWalletID != "0" {
		return CallbackKindWithdrawal
	}
	return CallbackKindBill
}

// CallbackRecord is one accepted callback in the ledger.
// (Kind, GatewayID, Status) is unique: a status change is a new record, a re-send is not.
type CallbackRecord struct {
	RecordID   string          `json:"recordId"`
	Kind       CallbackKind    `json:"kind"`
	GatewayID  string          `json:"gatewayId"`
	Status     string          `json:"status"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"receivedAt"`
}
