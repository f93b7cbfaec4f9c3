package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Derezo/accounting-api/internal/apperrors"
	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	portssvc "github.com/Derezo/accounting-api/internal/core/ports/services"
	"github.com/Derezo/accounting-api/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TemplateCompilerTestSuite struct {
	suite.Suite
	directory *MockAccountDirectory
	service   portssvc.JournalSvcFacade
	now       time.Time
	orgID     string
	userID    string
	cash      domain.Account
	revenue   domain.Account
}

func (suite *TemplateCompilerTestSuite) SetupTest() {
	suite.directory = new(MockAccountDirectory)
	suite.now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	suite.service = services.NewJournalService(suite.directory, nil, services.WithClock(func() time.Time { return suite.now }))
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cash = newAccount(suite.orgID, "1000", "Cash", domain.Asset)
	suite.revenue = newAccount(suite.orgID, "4000", "Service Revenue", domain.Revenue)
}

func (suite *TemplateCompilerTestSuite) expectRole(filter portsrepo.AccountFilter, accounts ...domain.Account) *mock.Call {
	return suite.directory.On("FindAccounts", mock.Anything, suite.orgID, filter).Return(accounts, nil)
}

func (suite *TemplateCompilerTestSuite) TestCashSale() {
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash).Once()
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue}, suite.revenue).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 100, "description": "invoice #1", "referenceId": "INV-1"}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(req)
	suite.Equal(suite.orgID, req.OrganizationID)
	suite.Equal(suite.userID, req.UserID)
	suite.Equal("invoice #1", req.Description)
	suite.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), req.Date)
	suite.Require().Len(req.Entries, 2)

	debit, credit := req.Entries[0], req.Entries[1]
	suite.Equal(suite.cash.AccountID, debit.AccountID)
	suite.Equal(domain.Debit, debit.Direction)
	suite.True(decimal.NewFromInt(100).Equal(debit.Amount))
	suite.Equal("Cash sale - invoice #1", debit.Description)
	suite.Equal(services.CashSale, debit.ReferenceType)
	suite.Equal("INV-1", debit.ReferenceID)

	suite.Equal(suite.revenue.AccountID, credit.AccountID)
	suite.Equal(domain.Credit, credit.Direction)
	suite.True(decimal.NewFromInt(100).Equal(credit.Amount))
	suite.Equal(services.CashSale, credit.ReferenceType)

	suite.directory.AssertExpectations(suite.T())
}

func (suite *TemplateCompilerTestSuite) TestCompiledTransactionPassesValidation() {
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash).Once()
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue}, suite.revenue).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": "250.50", "description": "walk-in"}, suite.userID)
	suite.Require().NoError(err)

	suite.directory.On("FindAccounts", mock.Anything, suite.orgID,
		portsrepo.AccountFilter{IDs: []string{suite.cash.AccountID, suite.revenue.AccountID}}).
		Return([]domain.Account{suite.cash, suite.revenue}, nil).Once()

	report, err := suite.service.ValidateTransactionRequest(context.Background(), *req)
	suite.Require().NoError(err)
	suite.True(report.IsValid)
	suite.Empty(report.Errors)
}

func (suite *TemplateCompilerTestSuite) TestUnknownTransactionType() {
	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, "BARTER",
		map[string]any{"amount": 10}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, services.ErrUnknownTransactionType)
	suite.ErrorIs(err, apperrors.ErrTemplateResolution)
	suite.Contains(err.Error(), "BARTER")
	suite.directory.AssertNotCalled(suite.T(), "FindAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TemplateCompilerTestSuite) TestUnresolvedRole() {
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 10}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, apperrors.ErrTemplateResolution)
	suite.NotErrorIs(err, apperrors.ErrAmbiguousAccountRole)
	suite.Contains(err.Error(), "ASSET")
}

func (suite *TemplateCompilerTestSuite) TestAmbiguousRole() {
	consulting := newAccount(suite.orgID, "4010", "Consulting Revenue", domain.Revenue)
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash).Once()
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue}, suite.revenue, consulting).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 10}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, apperrors.ErrAmbiguousAccountRole)
	suite.ErrorIs(err, apperrors.ErrTemplateResolution)
	suite.Contains(err.Error(), "4000")
	suite.Contains(err.Error(), "4010")
}

func (suite *TemplateCompilerTestSuite) TestPinnedAccountResolvesAmbiguity() {
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash).Once()
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue, IDs: []string{suite.revenue.AccountID}}, suite.revenue).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 10, "revenueAccountId": suite.revenue.AccountID}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.revenue.AccountID, req.Entries[1].AccountID)
	suite.directory.AssertExpectations(suite.T())
}

func (suite *TemplateCompilerTestSuite) TestDescriptionFallsBackToTemplateName() {
	receivable := newAccount(suite.orgID, "1200", "Accounts Receivable", domain.Asset)
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash).Once()
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Accounts Receivable"}, receivable).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashPaymentReceived,
		map[string]any{"amount": json.Number("75.25")}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.cash.AccountID, req.Entries[0].AccountID)
	suite.Equal(receivable.AccountID, req.Entries[1].AccountID)
	suite.Equal("Customer Payment Received", req.Description)
	suite.Equal("Payment received", req.Entries[0].Description)
	suite.directory.AssertNumberOfCalls(suite.T(), "FindAccounts", 2)
}

func (suite *TemplateCompilerTestSuite) TestRepeatedRoleIsResolvedOnce() {
	registry := services.NewTemplateRegistry(map[string]domain.BusinessTransactionTemplate{
		"SPLIT_SALE": {
			Name: "Split Sale",
			EntryTemplates: []domain.EntryTemplate{
				{Role: domain.AccountRole{Type: domain.Asset, NameHint: "Cash"}, Direction: domain.Debit, AmountField: "total"},
				{Role: domain.AccountRole{Type: domain.Revenue}, Direction: domain.Credit, AmountField: "goods"},
				{Role: domain.AccountRole{Type: domain.Revenue}, Direction: domain.Credit, AmountField: "services"},
			},
		},
	})
	svc := services.NewJournalService(suite.directory, registry)
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash).Once()
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue}, suite.revenue).Once()

	req, err := svc.CreateBusinessTransaction(context.Background(), suite.orgID, "SPLIT_SALE",
		map[string]any{"total": "30", "goods": 10.5, "services": "19.50"}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(req.Entries, 3)
	suite.Equal(suite.revenue.AccountID, req.Entries[1].AccountID)
	suite.Equal(suite.revenue.AccountID, req.Entries[2].AccountID)
	suite.Equal("Split Sale", req.Entries[1].Description)
	suite.True(services.CheckBalance(req.Entries).Balanced)
	suite.directory.AssertNumberOfCalls(suite.T(), "FindAccounts", 2)
}

func (suite *TemplateCompilerTestSuite) TestDirectoryFailure() {
	suite.directory.On("FindAccounts", mock.Anything, suite.orgID, mock.Anything).Return(nil, assert.AnError).Once()

	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 10}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TemplateCompilerTestSuite) TestInvalidAmounts() {
	testCases := []struct {
		name string
		data map[string]any
	}{
		{name: "missing", data: map[string]any{"description": "x"}},
		{name: "zero", data: map[string]any{"amount": 0}},
		{name: "negative", data: map[string]any{"amount": -5.5}},
		{name: "not a number", data: map[string]any{"amount": "ten"}},
		{name: "unsupported type", data: map[string]any{"amount": true}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale, tc.data, suite.userID)
			suite.Nil(req)
			suite.ErrorIs(err, apperrors.ErrTemplateResolution)
			suite.Contains(err.Error(), `"amount"`)
		})
	}
	suite.directory.AssertNotCalled(suite.T(), "FindAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TemplateCompilerTestSuite) TestMissingAmountReportedBeforeAccountLookup() {
	registry := services.NewTemplateRegistry(map[string]domain.BusinessTransactionTemplate{
		"DEPOSIT": {
			Name: "Deposit",
			EntryTemplates: []domain.EntryTemplate{
				{Role: domain.AccountRole{Type: domain.Asset, NameHint: "Cash"}, Direction: domain.Debit, AmountField: "amount"},
				{Role: domain.AccountRole{Type: domain.Liability}, Direction: domain.Credit, AmountField: "depositAmount"},
			},
		},
	})
	svc := services.NewJournalService(suite.directory, registry)

	req, err := svc.CreateBusinessTransaction(context.Background(), suite.orgID, "DEPOSIT",
		map[string]any{"amount": 10}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, apperrors.ErrTemplateResolution)
	suite.Contains(err.Error(), `"depositAmount"`)
	suite.directory.AssertNotCalled(suite.T(), "FindAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TemplateCompilerTestSuite) TestNumericTextFields() {
	testCases := []struct {
		name        string
		referenceID any
		description any
		wantRef     string
		wantDesc    string
	}{
		{name: "json number", referenceID: json.Number("1001"), description: json.Number("42"), wantRef: "1001", wantDesc: "42"},
		{name: "int", referenceID: 7, description: "rent", wantRef: "7", wantDesc: "rent"},
		{name: "float", referenceID: 12.5, description: "fees", wantRef: "12.5", wantDesc: "fees"},
		{name: "string", referenceID: " INV-9 ", description: "goods", wantRef: "INV-9", wantDesc: "goods"},
	}

	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash)
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue}, suite.revenue)
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
				map[string]any{"amount": json.Number("100"), "description": tc.description, "referenceId": tc.referenceID}, suite.userID)

			suite.Require().NoError(err)
			suite.Equal(tc.wantDesc, req.Description)
			for _, e := range req.Entries {
				suite.Equal(tc.wantRef, e.ReferenceID)
			}
		})
	}
}

func (suite *TemplateCompilerTestSuite) TestUnsupportedReferenceID() {
	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 10, "referenceId": map[string]any{"id": 1}}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, apperrors.ErrTemplateResolution)
	suite.Contains(err.Error(), `"referenceId"`)
	suite.directory.AssertNotCalled(suite.T(), "FindAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TemplateCompilerTestSuite) TestDateField() {
	testCases := []struct {
		name     string
		date     any
		expected time.Time
	}{
		{name: "date only", date: "2025-01-31", expected: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", date: "2025-01-31T10:15:00Z", expected: time.Date(2025, 1, 31, 10, 15, 0, 0, time.UTC)},
		{name: "time value", date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), expected: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	suite.expectRole(portsrepo.AccountFilter{Type: domain.Asset, NameContains: "Cash"}, suite.cash)
	suite.expectRole(portsrepo.AccountFilter{Type: domain.Revenue}, suite.revenue)
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
				map[string]any{"amount": 1, "date": tc.date}, suite.userID)
			suite.Require().NoError(err)
			suite.True(tc.expected.Equal(req.Date))
		})
	}
}

func (suite *TemplateCompilerTestSuite) TestInvalidDate() {
	req, err := suite.service.CreateBusinessTransaction(context.Background(), suite.orgID, services.CashSale,
		map[string]any{"amount": 1, "date": "31/01/2025"}, suite.userID)

	suite.Nil(req)
	suite.ErrorIs(err, apperrors.ErrTemplateResolution)
	suite.directory.AssertNotCalled(suite.T(), "FindAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func TestTemplateCompiler(t *testing.T) {
	suite.Run(t, new(TemplateCompilerTestSuite))
}
