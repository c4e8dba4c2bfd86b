package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock GatewayService ---
type MockGatewayService struct {
	mock.Mock
}

func (m *MockGatewayService) raw(args mock.Arguments) (json.RawMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGatewayService) GetRates(ctx context.Context, currency string, rateType domain.RateType) ([]domain.Rate, error) {
	args := m.Called(ctx, currency, rateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockGatewayService) GetBills(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, filter))
}

func (m *MockGatewayService) GetBill(ctx context.Context, billID int) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, billID))
}

func (m *MockGatewayService) GetTransactions(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, filter))
}

func (m *MockGatewayService) GetTransaction(ctx context.Context, transactionID int) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, transactionID))
}

func (m *MockGatewayService) GetVirtualWallets(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, filter))
}

func (m *MockGatewayService) GetVirtualWallet(ctx context.Context, virtualWalletID int) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, virtualWalletID))
}

func (m *MockGatewayService) GetWithdrawals(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, filter))
}

func (m *MockGatewayService) GetWithdrawal(ctx context.Context, withdrawalID int) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, withdrawalID))
}

func (m *MockGatewayService) GetTransfers(ctx context.Context, filter url.Values) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, filter))
}

func (m *MockGatewayService) GetTransfer(ctx context.Context, transferID int) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, transferID))
}

func (m *MockGatewayService) CreateBill(ctx context.Context, req domain.BillRequest) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, req))
}

func (m *MockGatewayService) CreateWithdrawal(ctx context.Context, req domain.WithdrawalRequest) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, req))
}

func (suite *HandlerTestSuite) TestCreateBill() {
	body := `{"wallet_id":12,"amount":"0.0021","currency":"BTC","lifetime":3600,"tracking_id":"order-7","callback_url":"https://shop.test/cb"}`
	suite.mockGateway.On("CreateBill", mock.Anything, domain.BillRequest{
		WalletID:    12,
		Amount:      "0.0021",
		Currency:    "BTC",
		Lifetime:    3600,
		TrackingID:  "order-7",
		CallbackURL: "https://shop.test/cb",
	}).Return(json.RawMessage(`{"id":301,"address":"bc1q"}`), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bills", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":301,"address":"bc1q"}`, w.Body.String())
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateBill_InvalidBody() {
	for _, body := range []string{
		`not json`,
		`{"amount":"1","currency":"BTC"}`,
		`{"wallet_id":0,"amount":"1","currency":"BTC"}`,
		`{"wallet_id":1,"currency":"BTC"}`,
		`{"wallet_id":1,"amount":"1","currency":"BTC","callback_url":"not a url"}`,
	} {
		w := suite.do(http.MethodPost, "/api/v1/bills", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockGateway.AssertNotCalled(suite.T(), "CreateBill", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateBill_ServiceErrors() {
	tests := []struct {
		err  error
		want int
	}{
		{err: apperrors.ErrUnknownCurrency, want: http.StatusBadRequest},
		{err: &apperrors.ServerError{Code: "-1", Message: "RESULT_WALLET_NOT_FOUND", Status: 404}, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		suite.mockGateway.On("CreateBill", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

		w := suite.do(http.MethodPost, "/api/v1/bills", `{"wallet_id":1,"amount":"1","currency":"XYZ"}`)

		suite.Equal(tt.want, w.Code, tt.err.Error())
	}
}

func (suite *HandlerTestSuite) TestCreateWithdrawal() {
	body := `{"virtual_wallet_id":5,"amount":"0.5","currency":"ETH","address":"0xabc","unique_id":99,"with_fee":true,"message":"payout"}`
	suite.mockGateway.On("CreateWithdrawal", mock.Anything, domain.WithdrawalRequest{
		VirtualWalletID: 5,
		Amount:          "0.5",
		Currency:        "ETH",
		Address:         "0xabc",
		UniqueID:        99,
		Message:         "payout",
		WithFee:         true,
	}).Return(json.RawMessage(`{"id":44}`), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/withdrawals", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":44}`, w.Body.String())
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateWithdrawal_InvalidBody() {
	for _, body := range []string{
		`{"amount":"0.5","currency":"ETH","address":"0xabc","unique_id":1}`,
		`{"virtual_wallet_id":5,"amount":"0.5","currency":"ETH","unique_id":1}`,
		`{"virtual_wallet_id":5,"amount":"0.5","currency":"ETH","address":"0xabc"}`,
	} {
		w := suite.do(http.MethodPost, "/api/v1/withdrawals", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockGateway.AssertNotCalled(suite.T(), "CreateWithdrawal", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListRoutesForwardFilter() {
	page := json.RawMessage(`{"data":[{"id":1}],"meta":{"pagination":{"page":2}}}`)
	filter := url.Values{"page": {"2"}, "status": {"2"}}

	routes := map[string]string{
		"/api/v1/bills":           "GetBills",
		"/api/v1/transactions":    "GetTransactions",
		"/api/v1/virtual-wallets": "GetVirtualWallets",
		"/api/v1/withdrawals":     "GetWithdrawals",
		"/api/v1/transfers":       "GetTransfers",
	}

	for path, method := range routes {
		suite.mockGateway.On(method, mock.Anything, filter).Return(page, nil).Once()

		w := suite.do(http.MethodGet, path+"?page=2&status=2", "")

		suite.Equal(http.StatusOK, w.Code, path)
		suite.JSONEq(string(page), w.Body.String(), path)
	}
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetRoutesByID() {
	routes := map[string]string{
		"/api/v1/bills/7":           "GetBill",
		"/api/v1/transactions/7":    "GetTransaction",
		"/api/v1/virtual-wallets/7": "GetVirtualWallet",
		"/api/v1/withdrawals/7":     "GetWithdrawal",
		"/api/v1/transfers/7":       "GetTransfer",
	}

	for path, method := range routes {
		suite.mockGateway.On(method, mock.Anything, 7).Return(json.RawMessage(`{"id":7}`), nil).Once()

		w := suite.do(http.MethodGet, path, "")

		suite.Equal(http.StatusOK, w.Code, path)
		suite.JSONEq(`{"id":7}`, w.Body.String(), path)
	}
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetRoute_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/bills/abc", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGateway.AssertNotCalled(suite.T(), "GetBill", mock.Anything, mock.Anything)

	suite.mockGateway.On("GetTransfer", mock.Anything, 0).Return(nil, apperrors.ErrValidation).Once()
	w = suite.do(http.MethodGet, "/api/v1/transfers/0", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetRoute_GatewayFailure() {
	suite.mockGateway.On("GetWithdrawal", mock.Anything, 9).Return(nil, apperrors.ErrConnectionFailure).Once()

	w := suite.do(http.MethodGet, "/api/v1/withdrawals/9", "")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *HandlerTestSuite) TestGetRoute_EmptyData() {
	suite.mockGateway.On("GetBill", mock.Anything, 3).Return(json.RawMessage(nil), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bills/3", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("null", w.Body.String())
}
