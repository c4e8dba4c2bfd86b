package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
)

// GatewayService exposes gateway resources. Payloads other than rates are returned
// as raw JSON.
type GatewayService struct {
	BaseService
	session    portssvc.SessionRequestSvc
	endpoints  portssvc.GatewayEndpoints
	currencies portssvc.CurrencyLookupSvc
	conversion *ConversionService
}

func NewGatewayService(session portssvc.SessionRequestSvc, endpoints portssvc.GatewayEndpoints, currencies portssvc.CurrencyLookupSvc) *GatewayService {
	return &GatewayService{
		session:    session,
		endpoints:  endpoints,
		currencies: currencies,
		conversion: NewConversionService(currencies, nil),
	}
}

// GetRates fetches the rate table for a source currency.
func (s *GatewayService) GetRates(ctx context.Context, currency string, rateType domain.RateType) ([]domain.Rate, error) {
	env, err := s.session.SendRequest(ctx, http.MethodGet, s.endpoints.Rates(rateType, currency), domain.RequestParams{})
	if err != nil {
		return nil, err
	}

	var rates []domain.Rate
	if err := json.Unmarshal(env.Data, &rates); err != nil {
		return nil, fmt.Errorf("%w: decoding %s rates: %v", apperrors.ErrEmptyResponse, currency, err)
	}
	return rates, nil
}

// CreateBill creates a deposit bill. The amount is sent rounded up to the currency precision.
func (s *GatewayService) CreateBill(ctx context.Context, req domain.BillRequest) (json.RawMessage, error) {
	if req.WalletID <= 0 {
		return nil, fmt.Errorf("%w: wallet id is required", apperrors.ErrValidation)
	}

	wire, err := s.conversion.WireAmount(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}
	billURL, err := s.endpoints.NewBill(req.Currency)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("amount", wire.Amount)
	form.Set("wallet", strconv.Itoa(req.WalletID))
	form.Set("pow", strconv.Itoa(wire.Pow))
	form.Set("lifetime", strconv.Itoa(req.Lifetime))
	setIfPresent(form, "tracking_id", req.TrackingID)
	setIfPresent(form, "callback_url", req.CallbackURL)
	setIfPresent(form, "success_url", req.SuccessURL)
	setIfPresent(form, "error_url", req.ErrorURL)
	setIfPresent(form, "address", req.Address)

	env, err := s.session.SendRequest(ctx, http.MethodPost, billURL, domain.RequestParams{Form: form})
	if err != nil {
		s.LogError(ctx, err, "Failed to create bill", "wallet", req.WalletID, "currency", req.Currency)
		return nil, err
	}
	return env.Data, nil
}

// CreateWithdrawal creates a withdrawal from a virtual wallet.
func (s *GatewayService) CreateWithdrawal(ctx context.Context, req domain.WithdrawalRequest) (json.RawMessage, error) {
	if req.VirtualWalletID <= 0 {
		return nil, fmt.Errorf("%w: virtual wallet id is required", apperrors.ErrValidation)
	}
	if req.Address == "" {
		return nil, fmt.Errorf("%w: address is required", apperrors.ErrValidation)
	}

	iso, err := s.currencies.ISO(req.Currency)
	if err != nil {
		return nil, err
	}
	wire, err := s.conversion.WireAmount(req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	withFee := "0"
	if req.WithFee {
		withFee = "1"
	}

	form := url.Values{}
	form.Set("amount", wire.Amount)
	form.Set("virtual_wallet_id", strconv.Itoa(req.VirtualWalletID))
	form.Set("address", req.Address)
	form.Set("currency", strconv.Itoa(iso))
	form.Set("unique_id", strconv.FormatInt(req.UniqueID, 10))
	form.Set("pow", strconv.Itoa(wire.Pow))
	form.Set("with_fee", withFee)
	setIfPresent(form, "tracking_id", req.TrackingID)
	setIfPresent(form, "callback_url", req.CallbackURL)
	setIfPresent(form, "message", req.Message)

	env, err := s.session.SendRequest(ctx, http.MethodPost, s.endpoints.NewWithdrawal(), domain.RequestParams{Form: form})
	if err != nil {
		s.LogError(ctx, err, "Failed to create withdrawal", "virtual_wallet", req.VirtualWalletID, "currency", req.Currency)
		return nil, err
	}
	return env.Data, nil
}

func (s *GatewayService) GetBills(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return s.list(ctx, s.endpoints.Bills(0), filter)
}

func (s *GatewayService) GetBill(ctx context.Context, billID int) (json.RawMessage, error) {
	return s.one(ctx, "bill", billID, s.endpoints.Bills)
}

func (s *GatewayService) GetTransactions(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return s.list(ctx, s.endpoints.Transactions(0), filter)
}

func (s *GatewayService) GetTransaction(ctx context.Context, transactionID int) (json.RawMessage, error) {
	return s.one(ctx, "transaction", transactionID, s.endpoints.Transactions)
}

func (s *GatewayService) GetVirtualWallets(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return s.list(ctx, s.endpoints.VirtualWallets(0), filter)
}

func (s *GatewayService) GetVirtualWallet(ctx context.Context, virtualWalletID int) (json.RawMessage, error) {
	return s.one(ctx, "virtual wallet", virtualWalletID, s.endpoints.VirtualWallets)
}

func (s *GatewayService) GetWithdrawals(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return s.list(ctx, s.endpoints.Withdrawals(0), filter)
}

func (s *GatewayService) GetWithdrawal(ctx context.Context, withdrawalID int) (json.RawMessage, error) {
	return s.one(ctx, "withdrawal", withdrawalID, s.endpoints.Withdrawals)
}

func (s *GatewayService) GetTransfers(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return s.list(ctx, s.endpoints.Transfers(0), filter)
}

func (s *GatewayService) GetTransfer(ctx context.Context, transferID int) (json.RawMessage, error) {
	return s.one(ctx, "transfer", transferID, s.endpoints.Transfers)
}

// list returns the whole response body, pagination included.
func (s *GatewayService) list(ctx context.Context, collectionURL string, filter url.Values) (json.RawMessage, error) {
	env, err := s.session.SendRequest(ctx, http.MethodGet, collectionURL, domain.RequestParams{Query: filter})
	if err != nil {
		return nil, err
	}
	return env.Body, nil
}

func (s *GatewayService) one(ctx context.Context, resource string, id int, resourceURL func(int) string) (json.RawMessage, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %s id must be positive", apperrors.ErrValidation, resource)
	}
	env, err := s.session.SendRequest(ctx, http.MethodGet, resourceURL(id), domain.RequestParams{})
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func setIfPresent(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}
