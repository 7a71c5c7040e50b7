package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alkimer/expenses/internal/store"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
)

// fail maps store errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateCategory),
		errors.Is(err, store.ErrDuplicateStatement),
		errors.Is(err, store.ErrDefaultCategory):
		util.Error(c, http.StatusConflict, util.CodeConflict, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, err.Error())
	}
}

// pathID reads a numeric :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "id inválido")
		return 0, false
	}
	return uint(id), true
}
