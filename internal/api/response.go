package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsearch/internal/api/middleware"
	"jobsearch/internal/errcode"
	"jobsearch/internal/metrics"
	"jobsearch/internal/store"
)

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func ServiceUnavailable(c *gin.Context, msg string) { Error(c, http.StatusServiceUnavailable, msg) }

// Fail 将错误转换为 {"error","code","fields"} 响应；未分类的错误按存储故障处理，只记录日志不外泄细节。
func Fail(c *gin.Context, err error) {
	e := errcode.As(err)
	metrics.ObserveError(string(e.Kind))

	if e.Kind == errcode.StorageFault {
		middleware.LoggerFromContext(c).Error("request failed", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": e.Kind})
		return
	}

	body := gin.H{"error": e.Detail, "code": e.Kind}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	c.JSON(e.Kind.Status(), body)
}

// notFound maps store.ErrNotFound to a NotFound error with detail.
func notFound(err error, detail string) error {
	if errors.Is(err, store.ErrNotFound) {
		return errcode.New(errcode.NotFound, detail)
	}
	return err
}

// duplicate maps store.ErrDuplicateKey to a DuplicateKey error with detail.
func duplicate(err error, detail string) error {
	if errors.Is(err, store.ErrDuplicateKey) {
		return errcode.New(errcode.DuplicateKey, detail)
	}
	return err
}
