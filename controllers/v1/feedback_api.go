package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/feedback"
	authutils "volonterka-backend/lib/utils/auth-utils"
	apimodels "volonterka-backend/models/api"
	feedbackapimodels "volonterka-backend/models/api/feedback"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Put(":id/status", controller.updateStatus)
	})
}

func (c *feedbackApiController) list(ctx *fiber.Ctx) error {
	var filter feedbackapimodels.ListFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := feedback.Instance.List(filter)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

func (c *feedbackApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := feedback.Instance.UpdateStatus(ctx.Params("id"), payload, authutils.GetUserID(ctx)); err != nil {
		if errors.Is(err, feedback.ErrFeedbackNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
