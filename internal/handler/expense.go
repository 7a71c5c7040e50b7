package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/alkimer/expenses/internal/service"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler serves manual cash expenses.
type ExpenseHandler struct {
	Expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

type addExpenseReq struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required,max=128"`
	Amount      string `json:"amount" binding:"required"`
}

// Add records a cash expense.
func (h *ExpenseHandler) Add(c *gin.Context) {
	var req addExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "fecha inválida, se espera AAAA-MM-DD")
		return
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "la descripción no puede estar vacía")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "monto inválido")
		return
	}

	transaction, err := h.Expenses.Add(date, description, amount)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"expense": transaction})
}

// List returns all cash expenses in date order.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.Expenses.List()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"expenses": expenses})
}

// Delete removes one cash expense.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Expenses.Delete(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"id": id})
}
