package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/gateway_client/internal/adapters/gateway"
	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/SscSPs/gateway_client/internal/core/services"
	"github.com/SscSPs/gateway_client/internal/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CallbackServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockSession *MockSession
	mockRepo    *MockCallbackRepository
	service     *services.CallbackService
}

func (suite *CallbackServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockSession = new(MockSession)
	suite.mockRepo = new(MockCallbackRepository)
	suite.service = services.NewCallbackService(suite.mockSession, suite.mockRepo)
}

func TestCallbackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CallbackServiceTestSuite))
}

func billCallback() domain.Callback {
	return domain.Callback{
		ID:      "301",
		Status:  "2",
		Sign:    domain.CallbackSign{Time: "1618826611", Hash: "$2y$10$hash"},
		Payload: json.RawMessage(`{"id":301,"status":2}`),
	}
}

func (suite *CallbackServiceTestSuite) TestProcess_InvalidSignature() {
	cb := billCallback()
	suite.mockSession.On("VerifySign", cb.Sign.Time, cb.Sign.Hash).Return(false).Once()

	record, err := suite.service.Process(suite.ctx, cb)

	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrInvalidSignature)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCallback", mock.Anything, mock.Anything)
}

func (suite *CallbackServiceTestSuite) TestProcess_RecordsBill() {
	cb := billCallback()
	suite.mockSession.On("VerifySign", cb.Sign.Time, cb.Sign.Hash).Return(true).Once()
	suite.mockRepo.On("SaveCallback", suite.ctx, mock.MatchedBy(func(r domain.CallbackRecord) bool {
		return r.Kind == domain.CallbackKindBill && r.GatewayID == "301" && r.Status == "2" &&
			r.RecordID != "" && string(r.Payload) == string(cb.Payload) && !r.ReceivedAt.IsZero()
	})).Return(nil).Once()

	record, err := suite.service.Process(suite.ctx, cb)

	suite.Require().NoError(err)
	suite.Equal(domain.CallbackKindBill, record.Kind)
	suite.Equal(time.UTC, record.ReceivedAt.Location())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CallbackServiceTestSuite) TestProcess_RecordsWithdrawal() {
	cb := billCallback()
	cb.VirtualWalletID = "17"
	suite.mockSession.On("VerifySign", mock.Anything, mock.Anything).Return(true).Once()
	suite.mockRepo.On("SaveCallback", suite.ctx, mock.MatchedBy(func(r domain.CallbackRecord) bool {
		return r.Kind == domain.CallbackKindWithdrawal
	})).Return(nil).Once()

	record, err := suite.service.Process(suite.ctx, cb)

	suite.Require().NoError(err)
	suite.Equal(domain.CallbackKindWithdrawal, record.Kind)
}

func (suite *CallbackServiceTestSuite) TestProcess_Duplicate() {
	cb := billCallback()
	existing := &domain.CallbackRecord{RecordID: "first", Kind: domain.CallbackKindBill, GatewayID: "301", Status: "2"}
	suite.mockSession.On("VerifySign", mock.Anything, mock.Anything).Return(true).Once()
	suite.mockRepo.On("SaveCallback", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindCallback", suite.ctx, domain.CallbackKindBill, "301", "2").Return(existing, nil).Once()

	record, err := suite.service.Process(suite.ctx, cb)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(existing, record)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CallbackServiceTestSuite) TestProcess_MissingID() {
	cb := billCallback()
	cb.ID = ""
	suite.mockSession.On("VerifySign", mock.Anything, mock.Anything).Return(true).Once()

	_, err := suite.service.Process(suite.ctx, cb)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CallbackServiceTestSuite) TestProcess_SaveError() {
	cb := billCallback()
	suite.mockSession.On("VerifySign", mock.Anything, mock.Anything).Return(true).Once()
	suite.mockRepo.On("SaveCallback", suite.ctx, mock.Anything).Return(assert.AnError).Once()

	record, err := suite.service.Process(suite.ctx, cb)

	suite.Nil(record)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrDuplicate)
}

func TestNewServiceContainer(t *testing.T) {
	session := new(MockSession)
	container := services.NewServiceContainer(currency.Default(), session, gateway.NewEndpoints(true), new(MockCallbackRepository))

	assert.NotNil(t, container.Currency)
	assert.NotNil(t, container.Gateway)
	assert.NotNil(t, container.Conversion)
	assert.NotNil(t, container.Callback)
}
