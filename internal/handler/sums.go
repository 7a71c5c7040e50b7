package handler

import (
	"github.com/alkimer/expenses/internal/store"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
)

// SumHandler serves category spend totals.
type SumHandler struct {
	Sums *store.SumStore
}

func NewSumHandler(sums *store.SumStore) *SumHandler {
	return &SumHandler{Sums: sums}
}

type sumRow struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	TotalCents   int64  `json:"total_cents"`
	Total        string `json:"total"`
}

func renderSums(sums []store.CategorySum) []sumRow {
	rows := make([]sumRow, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, sumRow{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			TotalCents:   s.TotalCents,
			Total:        s.Total().StringFixed(2),
		})
	}
	return rows
}

// ForStatement returns one statement's totals by category, largest first.
func (h *SumHandler) ForStatement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sums, err := h.Sums.ForStatement(id)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"sums": renderSums(sums)})
}

// ForAll returns global totals by category, largest first.
func (h *SumHandler) ForAll(c *gin.Context) {
	sums, err := h.Sums.ForAll()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"sums": renderSums(sums)})
}
