package parser

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one interpreted statement line. Every Transaction maps to
// exactly one input line; lines that cannot yield a valid date and amount
// produce nothing at all.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Installment *int // current installment number, when a C.NN/NN marker was found
}
