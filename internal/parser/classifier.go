package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Regex patterns for the date forms issuers print at the start of a
// transaction line. Strategies are tried in order; first match wins.
var (
	// Numeric short date: "12/05" or "3-11" (day/month, no year)
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})`)

	// Day plus Spanish month name: "25 Junio", "4 Dic.", "12 Oct"
	monthNamePattern = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-zÁÉÍÓÚáéíóúÜü.]+)`)

	// Hyphenated day-abbrev-year: "24-May-25", "24-May-2025"
	hyphenDatePattern = regexp.MustCompile(`^(\d{1,2})-([A-Za-zÁÉÍÓÚáéíóúÜü]{3})-(\d{2,4})`)
)

// monthNames maps Spanish month names and abbreviations (trailing period
// already stripped) to month numbers.
var monthNames = map[string]time.Month{
	"enero": 1, "ene": 1,
	"febrero": 2, "feb": 2,
	"marzo": 3, "mar": 3,
	"abril": 4, "abr": 4,
	"mayo": 5, "may": 5,
	"junio": 6, "jun": 6,
	"julio": 7, "jul": 7,
	"agosto": 8, "ago": 8,
	"septiembre": 9, "setiembre": 9, "sept": 9, "sep": 9,
	"octubre": 10, "oct": 10,
	"noviembre": 11, "nov": 11,
	"diciembre": 12, "dic": 12, "diciem": 12,
}

// dateMatch is the result of a successful classification: the recognized
// date and the rest of the line after the date token.
type dateMatch struct {
	date time.Time
	rest string
}

// dateMatcher attempts one date form against the start of a trimmed line.
// refYear fills in the year for forms that do not carry one.
type dateMatcher func(line string, refYear int) (dateMatch, bool)

var dateMatchers = []dateMatcher{
	matchNumericDate,
	matchMonthName,
	matchHyphenAbbrev,
}

// classifyLine decides whether a line starts with a recognizable date and,
// if so, returns it with the remainder. An invalid calendar date rejects
// the line instead of being clamped.
func classifyLine(line string, refYear int) (dateMatch, bool) {
	for _, match := range dateMatchers {
		if m, ok := match(line, refYear); ok {
			return m, true
		}
	}
	return dateMatch{}, false
}

func matchNumericDate(line string, refYear int) (dateMatch, bool) {
	loc := numericDatePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return dateMatch{}, false
	}
	day, _ := strconv.Atoi(line[loc[2]:loc[3]])
	month, _ := strconv.Atoi(line[loc[4]:loc[5]])
	date, ok := makeDate(refYear, time.Month(month), day)
	if !ok {
		return dateMatch{}, false
	}
	return dateMatch{date: date, rest: strings.TrimSpace(line[loc[1]:])}, true
}

func matchMonthName(line string, refYear int) (dateMatch, bool) {
	loc := monthNamePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return dateMatch{}, false
	}
	day, _ := strconv.Atoi(line[loc[2]:loc[3]])
	name := strings.ToLower(strings.TrimRight(line[loc[4]:loc[5]], "."))
	month, known := monthNames[name]
	if !known {
		return dateMatch{}, false
	}
	date, ok := makeDate(refYear, month, day)
	if !ok {
		return dateMatch{}, false
	}
	return dateMatch{date: date, rest: strings.TrimSpace(line[loc[1]:])}, true
}

func matchHyphenAbbrev(line string, _ int) (dateMatch, bool) {
	loc := hyphenDatePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return dateMatch{}, false
	}
	day, _ := strconv.Atoi(line[loc[2]:loc[3]])
	month, known := monthNames[strings.ToLower(line[loc[4]:loc[5]])]
	if !known {
		return dateMatch{}, false
	}
	yearPart := line[loc[6]:loc[7]]
	year, _ := strconv.Atoi(yearPart)
	if len(yearPart) == 2 {
		year += 2000
	}
	date, ok := makeDate(year, month, day)
	if !ok {
		return dateMatch{}, false
	}
	return dateMatch{date: date, rest: strings.TrimSpace(line[loc[1]:])}, true
}

// makeDate builds a calendar date, rejecting day/month combinations that
// time.Date would otherwise normalize (e.g. Feb 30 -> Mar 2).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
