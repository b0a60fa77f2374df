package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/slots-pg/dashboard-api/docs"
	v1 "github.com/slots-pg/dashboard-api/internal/api/handler/v1"
	"github.com/slots-pg/dashboard-api/internal/api/middleware"
	"github.com/slots-pg/dashboard-api/internal/config"
	"github.com/slots-pg/dashboard-api/internal/repository"
	"github.com/slots-pg/dashboard-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	Live   *v1.LiveHandler
}

// NewServer wires the handlers on top of the given stores. The caller must run s.Live.Run for the
// live feed to deliver events.
func NewServer(conf *config.AppConfig, slots repository.SlotDAO, users repository.UserDAO) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		Live:   v1.NewLiveHandler(),
	}

	s.MountMiddlewares()

	slotHandler := s.initSlotHandler(slots)
	userHandler := s.initUserHandler(users)
	s.MountHandlers(slotHandler, userHandler)

	return s
}

func (s *Server) initSlotHandler(slots repository.SlotDAO) *v1.SlotHandler {
	repo := repository.NewSlotRepository(slots)
	svc := service.NewSlotService(repo, s.Live)
	handler := v1.NewSlotHandler(svc)

	return handler
}

func (s *Server) initUserHandler(users repository.UserDAO) *v1.UserHandler {
	repo := repository.NewUserRepository(users)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(slotHandler *v1.SlotHandler, userHandler *v1.UserHandler) {
	const basePath = "/api/v1"

	slots := s.Router.Group(basePath)
	{
		slots.GET("/slots", slotHandler.HandleGetSlots)
		slots.GET("/slots/categories", slotHandler.HandleGetCategories)
		slots.GET("/slots/stats", slotHandler.HandleGetStats)
		slots.GET("/slots/live", s.Live.HandleLive)
		slots.GET("/slots/:slotID", slotHandler.HandleGetSlot)
		slots.POST("/slots", slotHandler.HandleCreateSlot)
		slots.PUT("/slots/:slotID", slotHandler.HandleUpdateSlot)
		slots.DELETE("/slots/:slotID", slotHandler.HandleDeleteSlot)
		slots.PATCH("/slots/:slotID/players", slotHandler.HandleUpdatePlayers)
	}

	users := s.Router.Group(basePath)
	{
		users.GET("/users", userHandler.HandleFindUser)
		users.POST("/users", userHandler.HandleCreateUser)
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Slots Dashboard API"
	docs.SwaggerInfo.Description = "Admin API for the slot catalog."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
