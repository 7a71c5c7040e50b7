package service

import (
	"time"

	"github.com/alkimer/expenses/internal/models"
	"github.com/alkimer/expenses/internal/store"

	"github.com/shopspring/decimal"
)

// ExpenseService records manual cash expenses. They are ordinary
// transactions attached to the reserved cash statement, so they flow into
// the same merchant, category and aggregation machinery as imported lines.
type ExpenseService struct {
	statements   *store.StatementStore
	merchants    *store.MerchantStore
	transactions *store.TransactionStore
}

func NewExpenseService(
	statements *store.StatementStore,
	merchants *store.MerchantStore,
	transactions *store.TransactionStore,
) *ExpenseService {
	return &ExpenseService{
		statements:   statements,
		merchants:    merchants,
		transactions: transactions,
	}
}

// Add records a cash expense on the given date.
func (s *ExpenseService) Add(date time.Time, description string, amount decimal.Decimal) (*models.Transaction, error) {
	cash, err := s.statements.Cash()
	if err != nil {
		return nil, err
	}
	merchant, err := s.merchants.GetOrCreate(description)
	if err != nil {
		return nil, err
	}
	transaction := models.Transaction{
		StatementID: cash.ID,
		MerchantID:  merchant.ID,
		Date:        date,
		AmountCents: models.Cents(amount),
	}
	if err := s.transactions.Create(&transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// List returns all cash expenses in date order.
func (s *ExpenseService) List() ([]store.TransactionRow, error) {
	cash, err := s.statements.Cash()
	if err != nil {
		return nil, err
	}
	return s.transactions.ListByStatement(cash.ID)
}

// Delete removes one cash expense.
func (s *ExpenseService) Delete(id uint) error {
	return s.transactions.Delete(id)
}
