package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobsearch/internal/api/middleware"
	"jobsearch/internal/database"
	"jobsearch/internal/errcode"
	"jobsearch/internal/ident"
	"jobsearch/internal/schema"
	"jobsearch/internal/storage"
)

const defaultResumeLinkTTL = 5 * time.Minute

// ApplicationHandler 处理求职申请，以及简历文件的临时下载链接。
type ApplicationHandler struct {
	store   ApplicationStore
	resumes ResumeLinker
	linkTTL time.Duration
	now     func() time.Time
}

// NewApplicationHandler 创建 ApplicationHandler。resumes 为 nil 时 resume-link 接口返回 503。
func NewApplicationHandler(store ApplicationStore, resumes ResumeLinker, linkTTL time.Duration) *ApplicationHandler {
	if linkTTL <= 0 {
		linkTTL = defaultResumeLinkTTL
	}
	return &ApplicationHandler{
		store:   store,
		resumes: resumes,
		linkTTL: linkTTL,
		now:     time.Now,
	}
}

// CreateApplication 校验 user_id 与 job_id 指向的记录存在后保存申请。
//
// The existence checks and the insert are not atomic: a user or job deleted
// between the check and the insert leaves an application with a dangling
// reference. Nothing in the service deletes users or jobs today.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req schema.ApplicationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, schema.BindError(err))
		return
	}

	userID, err := ident.DecodeField("user_id", *req.UserID)
	if err != nil {
		Fail(c, err)
		return
	}
	jobID, err := ident.DecodeField("job_id", *req.JobID)
	if err != nil {
		Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	ok, err := h.store.Exists(ctx, database.UserCollection, userID)
	if err != nil {
		Fail(c, err)
		return
	}
	if !ok {
		Fail(c, errcode.New(errcode.ReferenceNotFound, "User not found"))
		return
	}

	ok, err = h.store.Exists(ctx, database.JobCollection, jobID)
	if err != nil {
		Fail(c, err)
		return
	}
	if !ok {
		Fail(c, errcode.New(errcode.ReferenceNotFound, "Job not found"))
		return
	}

	app := req.Build(h.now())
	if err := h.store.CreateApplication(ctx, &app); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newApplicationResponse(app))
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, ok := h.loadApplication(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newApplicationResponse(*app))
}

// ListApplications 返回全部申请；带 user_id 查询参数时只返回 user_id 完全相同的记录。
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.store.ListApplications(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(apps, newApplicationResponse))
}

// GetResumeLink 返回申请所附简历的下载地址。
// 外部 http(s) 地址原样返回，其余视为对象存储 key 并生成预签名链接。
func (h *ApplicationHandler) GetResumeLink(c *gin.Context) {
	if h.resumes == nil {
		ServiceUnavailable(c, "object storage is not configured")
		return
	}

	app, ok := h.loadApplication(c)
	if !ok {
		return
	}

	if app.ResumeURL == nil || strings.TrimSpace(*app.ResumeURL) == "" {
		Fail(c, errcode.New(errcode.NotFound, "Resume not found"))
		return
	}
	ref := strings.TrimSpace(*app.ResumeURL)

	if storage.IsRemoteURL(ref) {
		c.JSON(http.StatusOK, gin.H{"url": ref})
		return
	}
	if !storage.IsValidObjectKey(ref) {
		Fail(c, errcode.New(errcode.NotFound, "Resume not found"))
		return
	}

	ctx := c.Request.Context()
	exists, err := h.resumes.ObjectExists(ctx, ref)
	if err != nil {
		Fail(c, err)
		return
	}
	if !exists {
		Fail(c, errcode.New(errcode.NotFound, "Resume not found"))
		return
	}

	signedURL, err := h.resumes.GeneratePresignedURL(ctx, ref, h.linkTTL)
	if err != nil {
		middleware.LoggerFromContext(c).Error("presign resume", slog.String("key", ref), slog.Any("error", err))
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":        signedURL,
		"expires_in": int(h.linkTTL / time.Second),
	})
}

func (h *ApplicationHandler) loadApplication(c *gin.Context) (*database.Application, bool) {
	id, err := ident.Decode(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return nil, false
	}

	app, err := h.store.GetApplication(c.Request.Context(), id)
	if err != nil {
		Fail(c, notFound(err, "Application not found"))
		return nil, false
	}
	return app, true
}
