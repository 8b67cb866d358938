package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/review"
	apimodels "volonterka-backend/models/api"
	reviewapimodels "volonterka-backend/models/api/review"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app *fiber.App) {
	controller := reviewApiController{}
	app.Route("reviews", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put(":id/visibility", controller.setVisibility)
	})
}

func (c *reviewApiController) list(ctx *fiber.Ctx) error {
	list, err := review.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *reviewApiController) setVisibility(ctx *fiber.Ctx) error {
	var payload reviewapimodels.VisibilityRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := review.Instance.SetVisibility(ctx.Params("id"), payload.Public); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
