package handler

import (
	"net/http"
	"strings"

	"github.com/alkimer/expenses/internal/store"
	"github.com/alkimer/expenses/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves category management.
type CategoryHandler struct {
	Categories *store.CategoryStore
}

func NewCategoryHandler(categories *store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

type createCategoryReq struct {
	Name string `json:"name" binding:"required,max=64"`
}

// Create adds a new category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "el nombre no puede estar vacío")
		return
	}
	category, err := h.Categories.Create(name)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"category": category})
}

// List returns all categories ordered by name.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Categories.List()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"categories": categories})
}

// Delete removes a category, moving its merchants to the default.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Categories.Delete(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"id": id})
}
