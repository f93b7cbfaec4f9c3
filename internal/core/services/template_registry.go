package services

import (
	"sort"

	"github.com/Derezo/accounting-api/internal/core/domain"
)

// Transaction types of the default catalog.
const (
	CashSale            = "CASH_SALE"
	CreditSale          = "CREDIT_SALE"
	CashPaymentReceived = "CASH_PAYMENT_RECEIVED"
	ExpenseCash         = "EXPENSE_CASH"
	ExpenseCredit       = "EXPENSE_CREDIT"
	PayVendor           = "PAY_VENDOR"
	OwnerInvestment     = "OWNER_INVESTMENT"
	OwnerWithdrawal     = "OWNER_WITHDRAWAL"
)

const (
	amountField      = "amount"
	descriptionField = "description"
)

// TemplateRegistry is an immutable catalog of business transaction templates.
// It is safe for concurrent use.
type TemplateRegistry struct {
	templates map[string]domain.BusinessTransactionTemplate
}

// NewTemplateRegistry creates a registry holding a private copy of templates.
func NewTemplateRegistry(templates map[string]domain.BusinessTransactionTemplate) *TemplateRegistry {
	r := &TemplateRegistry{templates: make(map[string]domain.BusinessTransactionTemplate, len(templates))}
	for key, tpl := range templates {
		r.templates[key] = cloneTemplate(tpl)
	}
	return r
}

// Lookup returns the template registered under transactionType.
func (r *TemplateRegistry) Lookup(transactionType string) (domain.BusinessTransactionTemplate, bool) {
	tpl, ok := r.templates[transactionType]
	if !ok {
		return domain.BusinessTransactionTemplate{}, false
	}
	return cloneTemplate(tpl), true
}

// List describes every registered template, ordered by transaction type.
func (r *TemplateRegistry) List() []domain.TransactionTypeInfo {
	keys := make([]string, 0, len(r.templates))
	for key := range r.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	infos := make([]domain.TransactionTypeInfo, 0, len(keys))
	for _, key := range keys {
		tpl := r.templates[key]
		infos = append(infos, domain.TransactionTypeInfo{
			Type:           key,
			Name:           tpl.Name,
			Description:    tpl.Description,
			RequiredFields: requiredFields(tpl),
		})
	}
	return infos
}

func requiredFields(tpl domain.BusinessTransactionTemplate) []string {
	fields := make([]string, 0, len(tpl.EntryTemplates)+1)
	for _, et := range tpl.EntryTemplates {
		fields = append(fields, et.AmountField)
	}
	fields = append(fields, descriptionField)
	return uniqueStrings(fields)
}

func cloneTemplate(tpl domain.BusinessTransactionTemplate) domain.BusinessTransactionTemplate {
	entries := make([]domain.EntryTemplate, len(tpl.EntryTemplates))
	copy(entries, tpl.EntryTemplates)
	tpl.EntryTemplates = entries
	return tpl
}

func entry(accountType domain.AccountType, nameHint string, direction domain.Direction, accountField, descriptionTemplate string) domain.EntryTemplate {
	return domain.EntryTemplate{
		Role:                domain.AccountRole{Type: accountType, NameHint: nameHint},
		Direction:           direction,
		AmountField:         amountField,
		AccountField:        accountField,
		DescriptionTemplate: descriptionTemplate,
	}
}

// DefaultTemplateRegistry returns the standard catalog of small-business transactions.
// Every template posts the same amount on both sides, so it balances by construction.
func DefaultTemplateRegistry() *TemplateRegistry {
	return NewTemplateRegistry(map[string]domain.BusinessTransactionTemplate{
		CashSale: {
			Name:        "Cash Sale",
			Description: "Record a sale paid immediately in cash",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Asset, "Cash", domain.Debit, "cashAccountId", "Cash sale - {{description}}"),
				entry(domain.Revenue, "", domain.Credit, "revenueAccountId", "Cash sale - {{description}}"),
			},
		},
		CreditSale: {
			Name:        "Credit Sale",
			Description: "Record a sale invoiced to a customer on account",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Asset, "Accounts Receivable", domain.Debit, "receivableAccountId", "Credit sale - {{description}}"),
				entry(domain.Revenue, "", domain.Credit, "revenueAccountId", "Credit sale - {{description}}"),
			},
		},
		CashPaymentReceived: {
			Name:        "Customer Payment Received",
			Description: "Record cash collected against an outstanding receivable",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Asset, "Cash", domain.Debit, "cashAccountId", "Payment received - {{description}}"),
				entry(domain.Asset, "Accounts Receivable", domain.Credit, "receivableAccountId", "Payment received - {{description}}"),
			},
		},
		ExpenseCash: {
			Name:        "Cash Expense",
			Description: "Record an expense paid immediately in cash",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Expense, "", domain.Debit, "expenseAccountId", "Expense - {{description}}"),
				entry(domain.Asset, "Cash", domain.Credit, "cashAccountId", "Expense - {{description}}"),
			},
		},
		ExpenseCredit: {
			Name:        "Expense on Credit",
			Description: "Record an expense billed by a vendor and payable later",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Expense, "", domain.Debit, "expenseAccountId", "Expense on account - {{description}}"),
				entry(domain.Liability, "Accounts Payable", domain.Credit, "payableAccountId", "Expense on account - {{description}}"),
			},
		},
		PayVendor: {
			Name:        "Pay Vendor",
			Description: "Record a cash payment settling an accounts payable balance",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Liability, "Accounts Payable", domain.Debit, "payableAccountId", "Vendor payment - {{description}}"),
				entry(domain.Asset, "Cash", domain.Credit, "cashAccountId", "Vendor payment - {{description}}"),
			},
		},
		OwnerInvestment: {
			Name:        "Owner Investment",
			Description: "Record cash contributed to the business by its owner",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Asset, "Cash", domain.Debit, "cashAccountId", "Owner investment - {{description}}"),
				entry(domain.Equity, "Capital", domain.Credit, "equityAccountId", "Owner investment - {{description}}"),
			},
		},
		OwnerWithdrawal: {
			Name:        "Owner Withdrawal",
			Description: "Record cash drawn from the business by its owner",
			EntryTemplates: []domain.EntryTemplate{
				entry(domain.Equity, "Draw", domain.Debit, "drawingAccountId", "Owner withdrawal - {{description}}"),
				entry(domain.Asset, "Cash", domain.Credit, "cashAccountId", "Owner withdrawal - {{description}}"),
			},
		},
	})
}
