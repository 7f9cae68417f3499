// Package server assembles the shelter web frontend: backend client,
// repositories, services, handlers and the gin engine that serves them.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/application"
	"github.com/shelter-admin/service-shelter-web/internal/config"
	"github.com/shelter-admin/service-shelter-web/internal/events"
	"github.com/shelter-admin/service-shelter-web/internal/handler"
	"github.com/shelter-admin/service-shelter-web/internal/middleware"
	"github.com/shelter-admin/service-shelter-web/internal/notify"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
	"github.com/shelter-admin/service-shelter-web/internal/repository"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

// ServiceName identifies this service in logs, health answers and events.
const ServiceName = "service-shelter-web"

// Options are the dependencies New wires together.
type Options struct {
	Config    *config.ServiceConfig
	Logger    *zap.Logger
	Publisher events.Publisher

	// Now overrides the clock used for notice expiry.
	Now func() time.Time
}

// New builds the router serving every page.
func New(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("server: config is required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	pub := opts.Publisher
	if pub == nil {
		pub = events.NopPublisher{}
	}

	client, err := httpclient.New(cfg.Backend.URL, cfg.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	// Repositories
	animalRepo := repository.NewAPIAnimalRepository(client)
	adopterRepo := repository.NewAPIAdopterRepository(client)
	donorRepo := repository.NewAPIDonorRepository(client)
	employeeRepo := repository.NewAPIEmployeeRepository(client)
	shelterRepo := repository.NewAPIShelterRepository(client)
	adoptionRepo := repository.NewAPIAdoptionRepository(client)
	reportRepo := repository.NewAPIReportRepository(client)

	// Services
	animalService := application.NewAnimalService(animalRepo, pub, log)
	adopterService := application.NewAdopterService(adopterRepo, pub, log)
	donorService := application.NewDonorService(donorRepo, pub, log)
	employeeService := application.NewEmployeeService(employeeRepo, pub, log)
	shelterService := application.NewShelterService(shelterRepo, pub, log)
	adoptionService := application.NewAdoptionService(adoptionRepo, pub, log)
	reportService := application.NewReportService(reportRepo, log)

	flash := notify.NewFlasher(cfg.NoticeTTL)
	if opts.Now != nil {
		flash = flash.WithClock(opts.Now)
	}
	pages := handler.NewPages(flash)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	router.StaticFS("/static", http.FS(view.Static()))

	rg := &router.RouterGroup
	handler.NewHealthHandler(repository.NewBackendProbe(client), ServiceName).RegisterRoutes(rg)
	handler.NewDashboardHandler(animalService, adoptionService, pages).RegisterRoutes(rg)
	handler.NewAnimalHandler(animalService, pages).RegisterRoutes(rg)
	handler.NewAdopterHandler(adopterService, pages).RegisterRoutes(rg)
	handler.NewDonorHandler(donorService, pages).RegisterRoutes(rg)
	handler.NewEmployeeHandler(employeeService, pages).RegisterRoutes(rg)
	handler.NewShelterHandler(shelterService, pages).RegisterRoutes(rg)
	handler.NewReportHandler(reportService, pages).RegisterRoutes(rg)

	return router, nil
}

// NewHTTPServer wraps h with the listener timeouts the service runs with.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
