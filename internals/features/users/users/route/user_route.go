// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolku_backend/internals/features/users/users/controller"
	userRepository "schoolku_backend/internals/features/users/users/repository"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(userRepository.NewUserRepository(db))

	api.Get("/schools/:school_id/users", ctl.ListUsersBySchool)

	users := api.Group("/users")
	{
		users.Post("/", ctl.CreateUser)
		users.Patch("/:id", ctl.UpdateUser)
	}
}
