package services

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/SscSPs/gateway_client/internal/core/domain"
)

// GatewayReaderSvc defines read operations against the gateway. Payloads stay opaque.
type GatewayReaderSvc interface {
	RateSource

	GetBills(ctx context.Context, filter url.Values) (json.RawMessage, error)
	GetBill(ctx context.Context, billID int) (json.RawMessage, error)
	GetTransactions(ctx context.Context, filter url.Values) (json.RawMessage, error)
	GetTransaction(ctx context.Context, transactionID int) (json.RawMessage, error)
	GetVirtualWallets(ctx context.Context, filter url.Values) (json.RawMessage, error)
	GetVirtualWallet(ctx context.Context, virtualWalletID int) (json.RawMessage, error)
	GetWithdrawals(ctx context.Context, filter url.Values) (json.RawMessage, error)
	GetWithdrawal(ctx context.Context, withdrawalID int) (json.RawMessage, error)
	GetTransfers(ctx context.Context, filter url.Values) (json.RawMessage, error)
	GetTransfer(ctx context.Context, transferID int) (json.RawMessage, error)
}

// GatewayWriterSvc defines operations that create gateway resources
type GatewayWriterSvc interface {
	CreateBill(ctx context.Context, req domain.BillRequest) (json.RawMessage, error)
	CreateWithdrawal(ctx context.Context, req domain.WithdrawalRequest) (json.RawMessage, error)
}

// GatewaySvcFacade combines all gateway interfaces
type GatewaySvcFacade interface {
	GatewayReaderSvc
	GatewayWriterSvc
}

// GatewayEndpoints builds the URLs of gateway resources. An id of 0 selects the collection.
type GatewayEndpoints interface {
	Rates(rateType domain.RateType, currency string) string
	Bills(id int) string
	NewBill(currency string) (string, error)
	Transactions(id int) string
	VirtualWallets(id int) string
	NewWithdrawal() string
	Withdrawals(id int) string
	Transfers(id int) string
}
