package server

import (
	"net/http"

	"bigcommerce-carecloud-sync/internal/handler"
	"bigcommerce-carecloud-sync/internal/repository"
	"bigcommerce-carecloud-sync/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	webhookHandler *handler.WebhookHandler
}

func NewServer(
	customerService service.CustomerService,
	orderService service.OrderService,
	events repository.SyncEventRepository,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{
		echo:           e,
		webhookHandler: handler.NewWebhookHandler(customerService, orderService, events),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- bigcommerce webhooks --------
	customers := s.echo.Group("/customers")
	customers.POST("/created", s.webhookHandler.CustomerCreated)
	customers.POST("/updated", s.webhookHandler.CustomerUpdated)

	orders := s.echo.Group("/orders")
	orders.POST("/created", s.webhookHandler.OrderCreated)
}

// Handler exposes the echo instance as an http.Handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
