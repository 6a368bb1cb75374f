package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pllus/videotube/internal/controllers"
)

func AuthRoutes(api fiber.Router, d Deps) {
	h := &controllers.AuthHandler{Service: d.Auth, Timeout: d.RequestTimeout}

	users := api.Group("/users")

	// POST /api/v1/users/register
	// curl -X POST http://127.0.0.1:8000/api/v1/users/register \
	//   -H "Content-Type: application/json" \
	//   -d '{"username":"alice","email":"alice@example.com","password":"hunter22"}'
	users.Post("/register", h.Register)

	// POST /api/v1/users/login -> data.accessToken is the bearer token
	users.Post("/login", h.Login)
}
