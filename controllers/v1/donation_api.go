package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/donation"
	apimodels "volonterka-backend/models/api"
	donationapimodels "volonterka-backend/models/api/donation"
)

type donationApiController struct {
	controllers.BaseAPIController
}

func InitDonationApiRouters(app *fiber.App) {
	controller := donationApiController{}
	app.Route("donations", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Put(":id/visibility", controller.setVisibility)
		router.Delete(":id", controller.delete)
	})
}

func (c *donationApiController) list(ctx *fiber.Ctx) error {
	list, err := donation.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *donationApiController) create(ctx *fiber.Ctx) error {
	var payload donationapimodels.DonationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := donation.Instance.Create(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *donationApiController) update(ctx *fiber.Ctx) error {
	var payload donationapimodels.DonationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := donation.Instance.Update(ctx.Params("id"), payload); err != nil {
		return donationFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *donationApiController) setVisibility(ctx *fiber.Ctx) error {
	var payload donationapimodels.VisibilityRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := donation.Instance.SetVisibility(ctx.Params("id"), payload.Public); err != nil {
		return donationFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *donationApiController) delete(ctx *fiber.Ctx) error {
	if err := donation.Instance.Delete(ctx.Params("id")); err != nil {
		return donationFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func donationFail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, donation.ErrDonationNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusInternalServerError)
}
