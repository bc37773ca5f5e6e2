package bootstrap

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/pjmaster/project-api/internal/api/http"
	"github.com/pjmaster/project-api/internal/api/http/middleware"
	projecthttp "github.com/pjmaster/project-api/internal/projects/http"
	"github.com/pjmaster/project-api/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DBDriver       string
	AllowOrigins   []string
	RateLimitRPS   float64
	RateLimitBurst int
	DB             Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORS(dep.AllowOrigins))

	var pinger httpapi.Pinger
	if dep.DB != nil {
		pinger = dep.DB
	}
	info := httpapi.ServiceInfo{Name: dep.ServiceName, Version: dep.Version, Driver: dep.DBDriver}
	healthHandler := httpapi.NewHealthHandler(info, pinger)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	projectsGroup := r.Group("/projects")
	projectsGroup.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	projecthttp.New(projectRepo).Register(projectsGroup)

	return r
}
