package service

import (
	"fmt"

	"github.com/alkimer/expenses/internal/extract"
	"github.com/alkimer/expenses/internal/models"
	"github.com/alkimer/expenses/internal/parser"
	"github.com/alkimer/expenses/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ImportService runs the statement import pipeline: extract text lines from
// the uploaded file, interpret each line, resolve merchants and persist the
// batch under a new statement.
type ImportService struct {
	log          zerolog.Logger
	statements   *store.StatementStore
	merchants    *store.MerchantStore
	transactions *store.TransactionStore
	extractor    extract.LineExtractor
}

func NewImportService(
	log zerolog.Logger,
	statements *store.StatementStore,
	merchants *store.MerchantStore,
	transactions *store.TransactionStore,
	extractor extract.LineExtractor,
) *ImportService {
	return &ImportService{
		log:          log,
		statements:   statements,
		merchants:    merchants,
		transactions: transactions,
		extractor:    extractor,
	}
}

// ImportResult describes one finished import.
type ImportResult struct {
	Statement *models.Statement `json:"statement"`
	Count     int               `json:"count"`
	Empty     bool              `json:"empty"`
}

// ImportStatement creates the statement record, extracts and interprets the
// file and persists the recognized transactions. The statement is created
// before extraction runs, so a file the extractor cannot read still leaves
// the statement behind for manual review. A file with no recognizable lines
// is not an error; the result is flagged empty.
func (s *ImportService) ImportStatement(month, year int, cardName, last4Digits, filePath string) (*ImportResult, error) {
	runID := uuid.NewString()
	log := s.log.With().
		Str("run_id", runID).
		Int("month", month).
		Int("year", year).
		Str("card", cardName).
		Logger()

	statement, err := s.statements.Create(month, year, cardName, last4Digits, filePath)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("statement_id", statement.ID).Msg("statement created")

	lines, err := s.extractor.ExtractLines(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("text extraction failed")
		return nil, fmt.Errorf("extraer texto de %s: %w", filePath, err)
	}

	parsed := parser.Extract(lines, month, year)
	log.Info().Int("lines", len(lines)).Int("recognized", len(parsed)).Msg("lines interpreted")

	rows := make([]models.Transaction, 0, len(parsed))
	for _, p := range parsed {
		merchant, err := s.merchants.GetOrCreate(p.Description)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.Transaction{
			StatementID: statement.ID,
			MerchantID:  merchant.ID,
			Date:        p.Date,
			AmountCents: models.Cents(p.Amount),
			Installment: p.Installment,
		})
	}
	if err := s.transactions.BulkInsert(rows); err != nil {
		return nil, err
	}

	return &ImportResult{
		Statement: statement,
		Count:     len(rows),
		Empty:     len(rows) == 0,
	}, nil
}
