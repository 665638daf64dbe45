package http

import (
	"github.com/gin-gonic/gin"

	contactUC "github.com/ta89365/twconnect2-sub000/internal/application/contact/usecases"
	"github.com/ta89365/twconnect2-sub000/internal/domain/contact"
	"github.com/ta89365/twconnect2-sub000/internal/infrastructure/config"
	"github.com/ta89365/twconnect2-sub000/internal/interfaces/http/handlers"
	contacthandlers "github.com/ta89365/twconnect2-sub000/internal/interfaces/http/handlers/contact"
	"github.com/ta89365/twconnect2-sub000/internal/interfaces/http/middleware"
	"github.com/ta89365/twconnect2-sub000/internal/interfaces/http/routes"
	"github.com/ta89365/twconnect2-sub000/internal/shared/logger"
	"github.com/ta89365/twconnect2-sub000/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	healthHandler  *handlers.HealthHandler
	contactHandler *contacthandlers.ContactHandler
	logger         logger.Interface
}

// NewRouter wires the contact pipeline behind the gin engine. The mail
// transport and content store come in as capabilities so tests (and future
// providers) can substitute them without touching the wiring.
func NewRouter(
	mailer contact.Mailer,
	store contact.AutoReplyStore,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	composer := contactUC.NewEmailComposer(markdown.NewMarkdownService(), log)
	resolver := contactUC.NewResolveAutoReplyUseCase(store, log)
	submitInquiryUC := contactUC.NewSubmitInquiryUseCase(
		resolver, composer, mailer, cfg.Email, cfg.Contact, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		healthHandler:  handlers.NewHealthHandler(),
		contactHandler: contacthandlers.NewContactHandler(submitInquiryUC, cfg.Contact, log),
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	routes.SetupContactRoutes(r.engine, &routes.ContactRouteConfig{
		ContactHandler: r.contactHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
