package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleController "sekolahku_backend/internals/features/school/modules/controller"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

// Note the delete threshold: module deletion cascades to lessons, so it is
// held at management level while create/update stay at teacher level.
func ModuleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := moduleController.NewModuleController(db)

	modules := r.Group("/modules")
	modules.Get("/", authMw.StudentOnly(), ctl.GetAll)
	modules.Get("/:id", authMw.StudentOnly(), ctl.GetByID)
	modules.Post("/", authMw.TeacherOnly(), ctl.Create)
	modules.Put("/:id", authMw.TeacherOnly(), ctl.Update)
	modules.Delete("/:id", authMw.PrincipalOnly(), ctl.Delete)
}
