package parser

import (
	"strings"
	"time"
)

// Extract interprets raw statement lines into transactions for the given
// target period. Lines are processed independently and in order: a line
// that fails any stage (no date, no amount, invalid calendar date) is
// skipped silently, never partially represented. The recognized date's day
// is trusted, but issuer statements omit or misstate the year, so the
// caller-supplied month and year are authoritative and replace whatever the
// line carried; if the day does not exist in the target month the line is
// dropped as well.
//
// An empty result is a valid outcome, not an error.
func Extract(lines []string, targetMonth, targetYear int) []Transaction {
	var transactions []Transaction
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m, ok := classifyLine(line, targetYear)
		if !ok || m.rest == "" {
			continue
		}

		amount, amountStart, ok := findAmount(m.rest)
		if !ok {
			continue
		}

		// Only whitespace is trimmed here: a sign character sitting between
		// the description and the amount stays part of the description text.
		desc, installment := sanitizeDescription(strings.TrimRight(m.rest[:amountStart], " \t"), raw)

		date, ok := makeDate(targetYear, time.Month(targetMonth), m.date.Day())
		if !ok {
			continue
		}

		transactions = append(transactions, Transaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Installment: installment,
		})
	}
	return transactions
}
