package services_test

import (
	"context"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock gateway session ---
type MockSession struct {
	mock.Mock
}

func (m *MockSession) SendRequest(ctx context.Context, method, url string, params domain.RequestParams) (*domain.Envelope, error) {
	args := m.Called(ctx, method, url, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Envelope), args.Error(1)
}

func (m *MockSession) AuthBasic() string {
	return m.Called().String(0)
}

func (m *MockSession) AccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSession) SignString(time string) string {
	return m.Called(time).String(0)
}

func (m *MockSession) VerifySign(time, hash string) bool {
	return m.Called(time, hash).Bool(0)
}

// --- Mock rate source ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) GetRates(ctx context.Context, currency string, rateType domain.RateType) ([]domain.Rate, error) {
	args := m.Called(ctx, currency, rateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

// --- Mock callback repository ---
type MockCallbackRepository struct {
	mock.Mock
}

func (m *MockCallbackRepository) SaveCallback(ctx context.Context, record domain.CallbackRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockCallbackRepository) FindCallback(ctx context.Context, kind domain.CallbackKind, gatewayID, status string) (*domain.CallbackRecord, error) {
	args := m.Called(ctx, kind, gatewayID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CallbackRecord), args.Error(1)
}
