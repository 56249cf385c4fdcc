package bootstrap

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/portfolio-backend/portfolio-api/internal/api/http"
	"github.com/portfolio-backend/portfolio-api/internal/api/http/middleware"
	portfoliohttp "github.com/portfolio-backend/portfolio-api/internal/portfolio/http"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/repository"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/service"
	"github.com/portfolio-backend/portfolio-api/internal/summary"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Stores         repository.Stores
	Ping           httpapi.Pinger
	AllowedOrigins []string
	TrustedProxies []string
	RateLimiter    *middleware.RateLimiter
}

// BuildRouter assembles the complete route table:
//
//	GET  /                      HTML summary
//	GET  /health, /healthz      health
//	GET  /api/                  API root listing
//	*    /projects/..., /experience/...      record endpoints
//	*    /api/projects/..., /api/experience/...  same, for the web client
//
// No route requires authentication. Forwarded headers are only believed from
// TrustedProxies; with none configured the peer address is the client.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	proxies, err := httpapi.ParseProxies(dep.TrustedProxies)
	if err != nil {
		log.Printf("[http] ignoring trusted proxies %v: %v", dep.TrustedProxies, err)
		proxies = nil
	}
	var trusted []string
	for _, p := range proxies {
		trusted = append(trusted, p.String())
	}
	if err := r.SetTrustedProxies(trusted); err != nil {
		log.Printf("[http] set trusted proxies: %v", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Ping)
	healthHandler.RegisterRoutes(r)

	projects := service.NewProjectService(dep.Stores.Projects)
	experiences := service.NewExperienceService(dep.Stores.Experiences)

	summary.NewHandler(projects, experiences).RegisterRoutes(r)

	records := portfoliohttp.New(projects, experiences)
	writeGuards := []gin.HandlerFunc{middleware.RequireJSON(), dep.RateLimiter.Middleware()}

	records.Register(r.Group("", writeGuards...))

	api := r.Group("/api")
	api.GET("/", httpapi.NewAPIRoot(proxies))
	records.Register(api.Group("", writeGuards...))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
