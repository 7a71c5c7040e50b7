package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Locale amount: digit groups with '.' as thousands separator, ',' and
// exactly two decimals, optional trailing minus. Matches '9.583,29',
// '2647.143,35', '83,50', '6.800,00-'.
var amountPattern = regexp.MustCompile(`\d[\d.]*,\d{2}-?`)

// findAmount scans the remainder of a line for the transaction amount.
// Statements append the amount as the final field, so the last occurrence
// wins; earlier numeric-looking substrings (installment counters, coupon
// numbers) must not be mistaken for it. The returned index is the start of
// the winning match within rest.
func findAmount(rest string) (decimal.Decimal, int, bool) {
	locs := amountPattern.FindAllStringIndex(rest, -1)
	if len(locs) == 0 {
		return decimal.Decimal{}, 0, false
	}
	loc := locs[len(locs)-1]
	matched := rest[loc[0]:loc[1]]

	// The minus sign appears either inside the match (trailing) or just
	// before it; either position marks the amount negative.
	negative := strings.Contains(matched, "-")
	if !negative && loc[0] > 0 && rest[loc[0]-1] == '-' {
		negative = true
	}

	clean := strings.ReplaceAll(matched, "-", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.Replace(clean, ",", ".", 1)
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, 0, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, loc[0], true
}
