package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch/internal/ident"
	"jobsearch/internal/schema"
)

// JobHandler 处理职位的创建与查询。
type JobHandler struct {
	store JobStore
}

func NewJobHandler(store JobStore) *JobHandler {
	return &JobHandler{store: store}
}

// ListJobs 返回全部职位。
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.store.ListJobs(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(jobs, newJobResponse))
}

// CreateJob 保存职位并返回带有存储分配 _id 的记录。
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req schema.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, schema.BindError(err))
		return
	}

	job := req.Build()
	if err := h.store.CreateJob(c.Request.Context(), &job); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobResponse(job))
}

// GetJob 按 _id 查询职位。
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := ident.Decode(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	job, err := h.store.GetJob(c.Request.Context(), id)
	if err != nil {
		Fail(c, notFound(err, "Job not found"))
		return
	}

	c.JSON(http.StatusOK, newJobResponse(*job))
}
