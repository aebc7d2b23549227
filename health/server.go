package health

import (
	"github.com/gofiber/fiber/v2"
)

// Server exposes a liveness endpoint for container orchestration.
type Server struct {
	app  *fiber.App
	addr string
}

func NewServer(port string) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return &Server{
		app:  app,
		addr: ":" + port,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
