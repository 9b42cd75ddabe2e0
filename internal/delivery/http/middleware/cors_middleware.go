package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the learning frontend to call the API from anywhere
// unless api.cors.origins narrows it down.
func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	if m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
	}

	return cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Content-Length, Accept-Encoding",
		AllowMethods: "GET, POST",
		AllowOrigins: allowOrigins,
	})
}
