package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alkimer/expenses/internal/store"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes the full dataset as a spreadsheet download.
type ExportHandler struct {
	Export *store.ExportStore
}

func NewExportHandler(export *store.ExportStore) *ExportHandler {
	return &ExportHandler{Export: export}
}

// Xlsx streams every transaction as an .xlsx file, newest statement first.
func (h *ExportHandler) Xlsx(c *gin.Context) {
	rows, err := h.Export.All()
	if err != nil {
		fail(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Gastos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo crear la hoja")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Año", "Mes", "Tarjeta", "Fecha", "Comercio", "Cuota", "Monto", "Categoría"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, r := range rows {
		row := idx + 2

		installment := ""
		if r.Installment != nil {
			installment = fmt.Sprintf("%d", *r.Installment)
		}
		amount := decimal.New(r.AmountCents, -2).StringFixed(2)

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Year)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.CardName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.MerchantName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), installment)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), amount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.CategoryName)
	}

	f.SetColWidth(sheetName, "C", "C", 16)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "G", "G", 12)
	f.SetColWidth(sheetName, "H", "H", 16)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"gastos_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "exportación fallida")
	}
}
