package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch/internal/auth"
	"jobsearch/internal/errcode"
	"jobsearch/internal/schema"
	"jobsearch/internal/store"
)

const duplicateEmployerDetail = "Employer with this e_id already exists"

// EmployerHandler 处理雇主资料。雇主以 e_id 对外标识。
type EmployerHandler struct {
	store EmployerStore
}

func NewEmployerHandler(store EmployerStore) *EmployerHandler {
	return &EmployerHandler{store: store}
}

func (h *EmployerHandler) ListEmployers(c *gin.Context) {
	employers, err := h.store.ListEmployers(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(employers, newEmployerResponse))
}

// CreateEmployer 保存雇主；e_id 已存在时返回 DUPLICATE_KEY。
func (h *EmployerHandler) CreateEmployer(c *gin.Context) {
	var req schema.EmployerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, schema.BindError(err))
		return
	}
	if err := schema.CheckPassword(*req.Password); err != nil {
		Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	_, err := h.store.GetEmployerByEID(ctx, *req.EID)
	switch {
	case err == nil:
		Fail(c, errcode.New(errcode.DuplicateKey, duplicateEmployerDetail))
		return
	case !errors.Is(err, store.ErrNotFound):
		Fail(c, err)
		return
	}

	hashed, err := auth.HashPassword(*req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	// 唯一索引兜底并发创建
	employer := req.Build(hashed)
	if err := h.store.CreateEmployer(ctx, &employer); err != nil {
		Fail(c, duplicate(err, duplicateEmployerDetail))
		return
	}

	c.JSON(http.StatusOK, newEmployerResponse(employer))
}

// GetEmployer 按 e_id 查询雇主。
func (h *EmployerHandler) GetEmployer(c *gin.Context) {
	employer, err := h.store.GetEmployerByEID(c.Request.Context(), c.Param("e_id"))
	if err != nil {
		Fail(c, notFound(err, "Employer not found"))
		return
	}
	c.JSON(http.StatusOK, newEmployerResponse(*employer))
}
