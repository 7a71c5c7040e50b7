package handler

import (
	"net/http"

	"github.com/alkimer/expenses/internal/store"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
)

// MerchantHandler serves merchant listing and category reassignment.
type MerchantHandler struct {
	Merchants *store.MerchantStore
}

func NewMerchantHandler(merchants *store.MerchantStore) *MerchantHandler {
	return &MerchantHandler{Merchants: merchants}
}

// List returns all merchants with their category names.
func (h *MerchantHandler) List(c *gin.Context) {
	merchants, err := h.Merchants.List()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"merchants": merchants})
}

type setCategoryReq struct {
	CategoryID uint `json:"category_id" binding:"required"`
}

// SetCategory reassigns a merchant's category. All of the merchant's
// transactions, past and future, follow the new mapping.
func (h *MerchantHandler) SetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req setCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}
	if err := h.Merchants.SetCategory(id, req.CategoryID); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"id": id, "category_id": req.CategoryID})
}
