package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/volunteer"
	apimodels "volonterka-backend/models/api"
)

type volunteerApiController struct {
	controllers.BaseAPIController
}

func InitVolunteerApiRouters(app *fiber.App) {
	controller := volunteerApiController{}
	app.Route("volunteers", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

func (c *volunteerApiController) list(ctx *fiber.Ctx) error {
	list, err := volunteer.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
