package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"volonterka-backend/controllers"
	authutils "volonterka-backend/lib/utils/auth-utils"
	"volonterka-backend/lib/withdrawal"
	apimodels "volonterka-backend/models/api"
	withdrawalapimodels "volonterka-backend/models/api/withdrawal"
)

type withdrawalApiController struct {
	controllers.BaseAPIController
}

func InitWithdrawalApiRouters(app *fiber.App) {
	controller := withdrawalApiController{}
	app.Route("withdrawals", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
	})
}

func (c *withdrawalApiController) list(ctx *fiber.Ctx) error {
	list, err := withdrawal.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *withdrawalApiController) create(ctx *fiber.Ctx) error {
	var payload withdrawalapimodels.WithdrawalRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := withdrawal.Instance.Create(payload, authutils.GetUserID(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
