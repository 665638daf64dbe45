package routes

import (
	"github.com/gin-gonic/gin"

	contacthandlers "github.com/ta89365/twconnect2-sub000/internal/interfaces/http/handlers/contact"
)

type ContactRouteConfig struct {
	ContactHandler *contacthandlers.ContactHandler
}

func SetupContactRoutes(engine *gin.Engine, config *ContactRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/contact", config.ContactHandler.SubmitInquiry)
	}
}
