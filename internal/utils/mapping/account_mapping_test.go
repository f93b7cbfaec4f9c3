package mapping_test

import (
	"testing"
	"time"

	"github.com/Derezo/accounting-api/internal/core/domain"
	"github.com/Derezo/accounting-api/internal/models"
	"github.com/Derezo/accounting-api/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestToDomainAccount(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	deleted := created.Add(time.Hour)
	m := models.Account{
		AccountID:      "acc-1",
		OrganizationID: "org-1",
		Code:           "1000",
		Name:           "Cash",
		AccountType:    models.Asset,
		IsActive:       false,
		DeletedAt:      &deleted,
		AuditFields:    models.AuditFields{CreatedAt: created, CreatedBy: "user-1", LastUpdatedAt: created, LastUpdatedBy: "user-2"},
	}

	d := mapping.ToDomainAccount(m)

	assert.Equal(t, domain.Asset, d.AccountType)
	assert.Equal(t, "org-1", d.OrganizationID)
	assert.Equal(t, "1000", d.Code)
	assert.False(t, d.IsActive)
	assert.Equal(t, &deleted, d.DeletedAt)
	assert.Equal(t, "user-2", d.LastUpdatedBy)
	assert.Equal(t, m, mapping.ToModelAccount(d))
}

func TestToDomainAccountSlice(t *testing.T) {
	assert.Empty(t, mapping.ToDomainAccountSlice(nil))

	ds := mapping.ToDomainAccountSlice([]models.Account{{AccountID: "a"}, {AccountID: "b"}})
	assert.Len(t, ds, 2)
	assert.Equal(t, "b", ds[1].AccountID)
}
