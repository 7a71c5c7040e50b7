package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"

	"github.com/alkimer/expenses/internal/service"
	"github.com/alkimer/expenses/internal/store"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var last4Pattern = regexp.MustCompile(`^\d{4}$`)

// StatementHandler serves statement import and management.
type StatementHandler struct {
	Imports      *service.ImportService
	Statements   *store.StatementStore
	Transactions *store.TransactionStore
	UploadDir    string
}

func NewStatementHandler(
	imports *service.ImportService,
	statements *store.StatementStore,
	transactions *store.TransactionStore,
	uploadDir string,
) *StatementHandler {
	return &StatementHandler{
		Imports:      imports,
		Statements:   statements,
		Transactions: transactions,
		UploadDir:    uploadDir,
	}
}

type importForm struct {
	Month       int    `form:"month" binding:"required,min=1,max=12"`
	Year        int    `form:"year" binding:"required,min=1990,max=2100"`
	CardName    string `form:"card_name" binding:"required,max=64"`
	Last4Digits string `form:"last4digits" binding:"required"`
}

// Import receives the statement file plus its period and card identity,
// stores the file and runs the import pipeline.
func (h *StatementHandler) Import(c *gin.Context) {
	var form importForm
	if err := c.ShouldBind(&form); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}
	if !last4Pattern.MatchString(form.Last4Digits) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "los últimos 4 dígitos deben ser numéricos")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "falta el archivo del resumen")
		return
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	path := filepath.Join(h.UploadDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "no se pudo guardar el archivo")
		return
	}

	result, err := h.Imports.ImportStatement(form.Month, form.Year, form.CardName, form.Last4Digits, path)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"statement": result.Statement,
		"count":     result.Count,
		"empty":     result.Empty,
	})
}

// List returns all statements, newest period first.
func (h *StatementHandler) List(c *gin.Context) {
	statements, err := h.Statements.List()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"statements": statements})
}

type updateStatementReq struct {
	Month    int    `json:"month" binding:"required,min=1,max=12"`
	Year     int    `json:"year" binding:"required,min=1990,max=2100"`
	CardName string `json:"card_name" binding:"required,max=64"`
}

// Update changes a statement's period or card name.
func (h *StatementHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateStatementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}
	if err := h.Statements.Update(id, req.Month, req.Year, req.CardName); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"id": id})
}

// Delete removes a statement and its transactions.
func (h *StatementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Statements.Delete(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"id": id})
}

// ListTransactions lists a statement's transactions in date order.
func (h *StatementHandler) ListTransactions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.Statements.Get(id); err != nil {
		fail(c, err)
		return
	}
	rows, err := h.Transactions.ListByStatement(id)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"transactions": rows})
}
