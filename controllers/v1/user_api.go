package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/users"
	authutils "volonterka-backend/lib/utils/auth-utils"
	apimodels "volonterka-backend/models/api"
	userapimodels "volonterka-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("applicants", controller.applicants)
		router.Get("donors", controller.donors)
		router.Get("administrators", controller.administrators)
		router.Get(":id", controller.getByID)
		router.Post(":id/status", controller.updateStatus)
	})
}

func (c *userApiController) applicants(ctx *fiber.Ctx) error {
	list, err := users.Instance.ListApplicants()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *userApiController) donors(ctx *fiber.Ctx) error {
	list, err := users.Instance.ListApprovedDonors()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *userApiController) administrators(ctx *fiber.Ctx) error {
	list, err := users.Instance.ListAdministrators()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *userApiController) getByID(ctx *fiber.Ctx) error {
	user, err := users.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return userFail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

func (c *userApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload userapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := users.Instance.UpdateStatus(ctx.Params("id"), payload, authutils.GetUserID(ctx)); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return userFail(ctx, err)
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func userFail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, users.ErrUserNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusInternalServerError)
}
