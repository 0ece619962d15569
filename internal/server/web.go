package server

import (
	"net/http"
	"strings"

	"devconnector/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// SetupWeb serves the embedded client for every path the API does not own.
func (s *Server) SetupWeb(app *fiber.App) {
	app.Use("/", filesystem.New(filesystem.Config{
		Root:         http.FS(web.Static()),
		Index:        "index.html",
		NotFoundFile: "index.html",
		Next: func(c *fiber.Ctx) bool {
			path := c.Path()
			return strings.HasPrefix(path, "/api") ||
				strings.HasPrefix(path, "/health") ||
				strings.HasPrefix(path, "/metrics")
		},
	}))
}
