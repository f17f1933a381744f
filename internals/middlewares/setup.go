package middlewares

import (
	"github.com/gofiber/fiber/v2"

	authSchool "schoolku_backend/internals/middlewares/auth_school"
)

// SetupMiddlewares memasang middleware dasar (urutan penting:
// recovery paling luar, lalu CORS, lalu klaim JWT opsional).
func SetupMiddlewares(app *fiber.App, jwtSecret string) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(authSchool.OptionalJWT(jwtSecret))
}
