package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alkimer/expenses/internal/models"
	"github.com/alkimer/expenses/internal/store"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeExtractor struct {
	lines []string
	err   error
}

func (f *fakeExtractor) ExtractLines(string) ([]string, error) {
	return f.lines, f.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Category{},
		&models.Merchant{},
		&models.Statement{},
		&models.Transaction{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	def := models.Category{Name: models.DefaultCategoryName}
	if err := db.FirstOrCreate(&def, models.Category{Name: models.DefaultCategoryName}).Error; err != nil {
		t.Fatalf("seed default category: %v", err)
	}
	cash := models.Statement{
		Month:    models.CashMonth,
		Year:     models.CashYear,
		CardName: models.CashCardName,
	}
	err = db.FirstOrCreate(&cash, models.Statement{
		Month:    models.CashMonth,
		Year:     models.CashYear,
		CardName: models.CashCardName,
	}).Error
	if err != nil {
		t.Fatalf("seed cash statement: %v", err)
	}
	return db
}

func newImportService(t *testing.T, db *gorm.DB, extractor *fakeExtractor) *ImportService {
	t.Helper()
	return NewImportService(
		zerolog.Nop(),
		store.NewStatementStore(db),
		store.NewMerchantStore(db),
		store.NewTransactionStore(db),
		extractor,
	)
}

func TestImportStatement(t *testing.T) {
	db := newTestDB(t)
	extractor := &fakeExtractor{lines: []string{
		"RESUMEN DE CUENTA",
		"05/03 SUPERMERCADO * LA FLOR C.03/06 9.583,29",
		"09/03 FARMACIA DEL SOL 1.200,00",
		"",
		"SALDO ANTERIOR",
	}}
	svc := newImportService(t, db, extractor)

	result, err := svc.ImportStatement(3, 2024, "VISA", "1234", "resumen.pdf")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Count != 2 || result.Empty {
		t.Fatalf("result = count %d empty %v, want 2 false", result.Count, result.Empty)
	}

	rows, err := store.NewTransactionStore(db).ListByStatement(result.Statement.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].MerchantName != "LA FLOR" {
		t.Errorf("merchant = %q, want LA FLOR", rows[0].MerchantName)
	}
	if rows[0].AmountCents != 958329 {
		t.Errorf("amount = %d, want 958329", rows[0].AmountCents)
	}
	if rows[0].Installment == nil || *rows[0].Installment != 3 {
		t.Errorf("installment = %v, want 3", rows[0].Installment)
	}
	if rows[0].CategoryName != models.DefaultCategoryName {
		t.Errorf("category = %q, want default", rows[0].CategoryName)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !rows[0].Date.Equal(want) {
		t.Errorf("date = %v, want %v", rows[0].Date, want)
	}
}

func TestImportStatementEmptyFile(t *testing.T) {
	db := newTestDB(t)
	extractor := &fakeExtractor{lines: []string{"RESUMEN DE CUENTA", "SALDO ANTERIOR"}}
	svc := newImportService(t, db, extractor)

	result, err := svc.ImportStatement(3, 2024, "VISA", "1234", "vacio.pdf")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !result.Empty || result.Count != 0 {
		t.Fatalf("result = count %d empty %v, want 0 true", result.Count, result.Empty)
	}
}

func TestImportStatementExtractorFailureKeepsStatement(t *testing.T) {
	db := newTestDB(t)
	extractor := &fakeExtractor{err: errors.New("archivo ilegible")}
	svc := newImportService(t, db, extractor)

	_, err := svc.ImportStatement(3, 2024, "VISA", "1234", "roto.pdf")
	if err == nil {
		t.Fatal("import of unreadable file succeeded")
	}

	statements, err := store.NewStatementStore(db).List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var found bool
	for _, st := range statements {
		if st.Month == 3 && st.Year == 2024 && st.CardName == "VISA" {
			found = true
		}
	}
	if !found {
		t.Fatal("statement was not kept after extractor failure")
	}
}

func TestImportStatementDuplicate(t *testing.T) {
	db := newTestDB(t)
	extractor := &fakeExtractor{lines: nil}
	svc := newImportService(t, db, extractor)

	if _, err := svc.ImportStatement(3, 2024, "VISA", "1234", "a.pdf"); err != nil {
		t.Fatalf("first import: %v", err)
	}
	_, err := svc.ImportStatement(3, 2024, "VISA", "1234", "b.pdf")
	if !errors.Is(err, store.ErrDuplicateStatement) {
		t.Fatalf("duplicate import err = %v, want ErrDuplicateStatement", err)
	}
}

func TestImportMergesRepeatedMerchants(t *testing.T) {
	db := newTestDB(t)
	extractor := &fakeExtractor{lines: []string{
		"05/03 LA FLOR 1.000,00",
		"12/03 LA FLOR 2.000,00",
	}}
	svc := newImportService(t, db, extractor)

	result, err := svc.ImportStatement(3, 2024, "VISA", "1234", "a.pdf")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	rows, err := store.NewTransactionStore(db).ListByStatement(result.Statement.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].MerchantID != rows[1].MerchantID {
		t.Fatalf("repeated description created two merchants: %d, %d", rows[0].MerchantID, rows[1].MerchantID)
	}
}

func TestExpenseAddAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewExpenseService(
		store.NewStatementStore(db),
		store.NewMerchantStore(db),
		store.NewTransactionStore(db),
	)

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	tx, err := svc.Add(day, "VERDULERIA", decimal.RequireFromString("1500.50"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if tx.AmountCents != 150050 {
		t.Fatalf("amount = %d, want 150050", tx.AmountCents)
	}

	cash, err := store.NewStatementStore(db).Cash()
	if err != nil {
		t.Fatalf("cash: %v", err)
	}
	if tx.StatementID != cash.ID {
		t.Fatalf("expense statement = %d, want cash %d", tx.StatementID, cash.ID)
	}

	rows, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}

	if err := svc.Delete(tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(tx.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
