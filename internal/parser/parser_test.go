package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestExtract_FullLine(t *testing.T) {
	lines := []string{"05/03 SUPERMERCADO * LA FLOR C.03/06 9.583,29"}
	txs := Extract(lines, 3, 2024)
	if len(txs) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txs))
	}
	tx := txs[0]
	if want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC); !tx.Date.Equal(want) {
		t.Errorf("date = %v, want %v", tx.Date, want)
	}
	if tx.Description != "LA FLOR" {
		t.Errorf("description = %q, want %q", tx.Description, "LA FLOR")
	}
	if want := decimal.RequireFromString("9583.29"); !tx.Amount.Equal(want) {
		t.Errorf("amount = %s, want %s", tx.Amount, want)
	}
	if tx.Installment == nil || *tx.Installment != 3 {
		t.Errorf("installment = %v, want 3", tx.Installment)
	}
}

func TestExtract_TargetPeriodOverridesLineMonth(t *testing.T) {
	// The line says month 12; the statement period is authoritative.
	txs := Extract([]string{"15/12 COMERCIO 100,00"}, 7, 2024)
	if len(txs) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txs))
	}
	want := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	if !txs[0].Date.Equal(want) {
		t.Errorf("date = %v, want %v", txs[0].Date, want)
	}
}

func TestExtract_SkipsUnparsableLines(t *testing.T) {
	lines := []string{
		"",
		"SALDO ANTERIOR",                  // no date
		"05/03 SIN IMPORTE",               // no amount
		"30 Feb market 1.000,00-",         // invalid calendar date
		"31/01 COMERCIO VALIDO 50,00",     // day invalid for target month below
		"10/03 COMERCIO REAL 1.234,56",    // survives
		"12 Oct OTRA COMPRA 77,10",        // survives
		"TOTAL CONSUMOS DEL MES 9.999,99", // no date
	}
	txs := Extract(lines, 4, 2025)
	if len(txs) != 2 {
		t.Fatalf("Extract() returned %d transactions, want 2", len(txs))
	}
	if txs[0].Description != "COMERCIO REAL" || txs[1].Description != "OTRA COMPRA" {
		t.Errorf("descriptions = %q, %q; input order not preserved", txs[0].Description, txs[1].Description)
	}
	for _, tx := range txs {
		if tx.Date.Month() != time.April || tx.Date.Year() != 2025 {
			t.Errorf("transaction %q period = %v, want April 2025", tx.Description, tx.Date)
		}
	}
}

func TestExtract_NegativeAmounts(t *testing.T) {
	tests := []struct {
		line     string
		want     string
		wantDesc string
	}{
		{"05/03 DEVOLUCION COMPRA 6.800,00-", "-6800", "DEVOLUCION COMPRA"},
		// A sign ahead of the amount still belongs to the description text.
		{"05/03 AJUSTE DEBITO -9.990,00", "-9990", "AJUSTE DEBITO -"},
	}
	for _, tt := range tests {
		txs := Extract([]string{tt.line}, 3, 2024)
		if len(txs) != 1 {
			t.Fatalf("Extract(%q) returned %d transactions, want 1", tt.line, len(txs))
		}
		if want := decimal.RequireFromString(tt.want); !txs[0].Amount.Equal(want) {
			t.Errorf("Extract(%q) amount = %s, want %s", tt.line, txs[0].Amount, want)
		}
		if txs[0].Description != tt.wantDesc {
			t.Errorf("Extract(%q) description = %q, want %q", tt.line, txs[0].Description, tt.wantDesc)
		}
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if txs := Extract(nil, 1, 2024); len(txs) != 0 {
		t.Errorf("Extract(nil) returned %d transactions, want 0", len(txs))
	}
	if txs := Extract([]string{"nada", "que", "parsear"}, 1, 2024); len(txs) != 0 {
		t.Errorf("Extract() on garbage returned %d transactions, want 0", len(txs))
	}
}

func TestExtract_InstallmentCounterNotMistakenForAmount(t *testing.T) {
	// Two amount-shaped substrings: the last one is the amount.
	txs := Extract([]string{"05/03 CUOTA 11,11 PLAN GRANDE 222,22"}, 3, 2024)
	if len(txs) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1", len(txs))
	}
	if want := decimal.RequireFromString("222.22"); !txs[0].Amount.Equal(want) {
		t.Errorf("amount = %s, want %s", txs[0].Amount, want)
	}
}
