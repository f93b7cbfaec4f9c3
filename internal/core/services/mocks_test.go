package services_test

import (
	"context"

	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountDirectory ---
type MockAccountDirectory struct {
	mock.Mock
}

// Ensure MockAccountDirectory implements portsrepo.AccountDirectory
var _ portsrepo.AccountDirectory = (*MockAccountDirectory)(nil)

func (m *MockAccountDirectory) FindAccounts(ctx context.Context, organizationID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func newAccount(organizationID, code, name string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: organizationID,
		Code:           code,
		Name:           name,
		AccountType:    accountType,
		IsActive:       true,
	}
}
