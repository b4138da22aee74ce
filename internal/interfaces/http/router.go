package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	dealershipapp "dubhub/internal/application/dealership"
	"dubhub/internal/application/export"
	resourceapp "dubhub/internal/application/resource"
	taskapp "dubhub/internal/application/task"
	ticketapp "dubhub/internal/application/ticket"
	"dubhub/internal/infrastructure/config"
	"dubhub/internal/interfaces/http/handlers"
	"dubhub/internal/interfaces/http/middleware"
	"dubhub/internal/interfaces/http/routes"
	"dubhub/internal/shared/dates"
	"dubhub/internal/shared/logger"
	"dubhub/internal/shared/services/markdown"
)

// Services bundles the application services the router exposes.
type Services struct {
	Tickets     *ticketapp.Service
	Dealerships *dealershipapp.Service
	Resources   *resourceapp.Service
	Tasks       *taskapp.Service
	Exporter    *export.Service
}

// Router represents the HTTP router configuration
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	log               logger.Interface
	ticketHandler     *handlers.TicketHandler
	dealershipHandler *handlers.DealershipHandler
	resourceHandler   *handlers.ResourceHandler
	taskHandler       *handlers.TaskHandler
	exportHandler     *handlers.ExportHandler
	catalogHandler    *handlers.CatalogHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(cfg *config.Config, svc *Services, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()
	registerValidations()

	md := markdown.NewService()

	return &Router{
		engine:            engine,
		cfg:               cfg,
		log:               log,
		ticketHandler:     handlers.NewTicketHandler(svc.Tickets, md),
		dealershipHandler: handlers.NewDealershipHandler(svc.Dealerships),
		resourceHandler:   handlers.NewResourceHandler(svc.Resources, md),
		taskHandler:       handlers.NewTaskHandler(svc.Tasks),
		exportHandler: handlers.NewExportHandler(
			svc.Tickets, svc.Dealerships, svc.Resources, svc.Tasks, svc.Exporter,
		),
		catalogHandler: handlers.NewCatalogHandler(),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.engine.Group("/api/v1")
	{
		routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
			TicketHandler: r.ticketHandler,
		})
		routes.SetupDealershipRoutes(api, &routes.DealershipRouteConfig{
			DealershipHandler: r.dealershipHandler,
		})
		routes.SetupResourceRoutes(api, &routes.ResourceRouteConfig{
			ResourceHandler: r.resourceHandler,
		})
		routes.SetupTaskRoutes(api, &routes.TaskRouteConfig{
			TaskHandler: r.taskHandler,
		})
		routes.SetupExportRoutes(api, &routes.ExportRouteConfig{
			ExportHandler:  r.exportHandler,
			CatalogHandler: r.catalogHandler,
		})
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// registerValidations adds the MM/DD/YYYY rule used by binding tags.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("usdate", func(fl validator.FieldLevel) bool {
			return dates.Valid(fl.Field().String())
		})
	}
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
