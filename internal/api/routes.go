package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"jobsearch/internal/api/middleware"
)

// Deps 汇总路由所需的依赖。Resumes 与 RateCounter 可为 nil。
type Deps struct {
	Jobs         JobStore
	Employers    EmployerStore
	Users        UserStore
	Applications ApplicationStore

	Resumes       ResumeLinker
	ResumeLinkTTL time.Duration

	RateCounter     middleware.RateCounter
	WritesPerMinute int
}

// RegisterRoutes 注册业务路由，路径不带前缀。
func RegisterRoutes(router *gin.Engine, deps Deps) {
	if deps.RateCounter != nil && deps.WritesPerMinute > 0 {
		router.Use(middleware.WriteRateLimitMiddleware(deps.RateCounter, deps.WritesPerMinute, time.Now))
	}

	jobHandler := NewJobHandler(deps.Jobs)
	employerHandler := NewEmployerHandler(deps.Employers)
	userHandler := NewUserHandler(deps.Users)
	applicationHandler := NewApplicationHandler(deps.Applications, deps.Resumes, deps.ResumeLinkTTL)

	router.GET("/jobs", jobHandler.ListJobs)
	router.POST("/job", jobHandler.CreateJob)
	router.GET("/job/:id", jobHandler.GetJob)

	router.GET("/employers", employerHandler.ListEmployers)
	router.POST("/employer", employerHandler.CreateEmployer)
	router.GET("/employer/:e_id", employerHandler.GetEmployer)

	router.GET("/users", userHandler.ListUsers)
	router.POST("/user", userHandler.CreateUser)
	router.GET("/user/:id", userHandler.GetUser)
	router.PUT("/user/:id", userHandler.ReplaceUser)
	router.PATCH("/user/:id", userHandler.PatchUser)

	router.POST("/application", applicationHandler.CreateApplication)
	router.GET("/applications", applicationHandler.ListApplications)
	router.GET("/applications/:id", applicationHandler.GetApplication)
	router.GET("/applications/:id/resume-link", applicationHandler.GetResumeLink)
}
