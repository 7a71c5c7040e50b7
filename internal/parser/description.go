package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Installment marker: "C.03/06", "C 9/12", case-insensitive. The first
	// number is the current installment.
	installmentPattern = regexp.MustCompile(`(?i)C\.?\s*(\d{1,2})/(\d{1,2})`)

	numericTokenPattern = regexp.MustCompile(`^\d+$`)
)

// sanitizeDescription cleans the merchant segment that precedes the amount.
// It extracts the installment marker, drops issuer reference codes before a
// '*', strips leading purely numeric tokens (coupon numbers), and collapses
// whitespace. If everything is stripped away the original raw line is used
// so no transaction ever carries a blank description.
func sanitizeDescription(segment, rawLine string) (string, *int) {
	var installment *int
	if loc := installmentPattern.FindStringSubmatchIndex(segment); loc != nil {
		if n, err := strconv.Atoi(segment[loc[2]:loc[3]]); err == nil {
			installment = &n
		}
		// Drop the marker and everything after it.
		segment = segment[:loc[0]]
	}

	// Issuer reference codes precede the merchant name; the name starts
	// after the first '*'.
	if i := strings.IndexByte(segment, '*'); i >= 0 {
		segment = segment[i+1:]
	}

	tokens := strings.Fields(segment)
	for len(tokens) > 0 && numericTokenPattern.MatchString(tokens[0]) {
		tokens = tokens[1:]
	}

	desc := strings.Join(tokens, " ")
	if desc == "" {
		desc = rawLine
	}
	return desc, installment
}
