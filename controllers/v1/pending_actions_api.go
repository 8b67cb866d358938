package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	pendingactions "volonterka-backend/lib/pending-actions"
	authutils "volonterka-backend/lib/utils/auth-utils"
	apimodels "volonterka-backend/models/api"
	pendingapimodels "volonterka-backend/models/api/pending"
)

type pendingActionsApiController struct {
	controllers.BaseAPIController
}

func InitPendingActionsApiRouters(app *fiber.App) {
	controller := pendingActionsApiController{}
	app.Route("pending-actions", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.getByID)
		router.Post(":id/approve", controller.approve)
		router.Post(":id/reject", controller.reject)
		router.Post(":id/revert", controller.revert)
	})
}

func (c *pendingActionsApiController) list(ctx *fiber.Ctx) error {
	list, err := pendingactions.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *pendingActionsApiController) getByID(ctx *fiber.Ctx) error {
	action, err := pendingactions.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return pendingFail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(action))
}

func (c *pendingActionsApiController) approve(ctx *fiber.Ctx) error {
	entityID, err := pendingactions.Instance.Approve(ctx.Params("id"), authutils.GetUserID(ctx))
	if err != nil {
		return pendingFail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(entityID))
}

func (c *pendingActionsApiController) reject(ctx *fiber.Ctx) error {
	var payload pendingapimodels.RejectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := pendingactions.Instance.Reject(ctx.Params("id"), authutils.GetUserID(ctx), payload.Notes); err != nil {
		return pendingFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *pendingActionsApiController) revert(ctx *fiber.Ctx) error {
	if err := pendingactions.Instance.Revert(ctx.Params("id")); err != nil {
		return pendingFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func pendingFail(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pendingactions.ErrActionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, pendingactions.ErrAlreadyApproved),
		errors.Is(err, pendingactions.ErrInvalidPayload),
		errors.Is(err, pendingactions.ErrUnsupportedEntity):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusInternalServerError)
}
