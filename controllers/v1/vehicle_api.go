package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/vehicle"
	apimodels "volonterka-backend/models/api"
	vehicleapimodels "volonterka-backend/models/api/vehicle"
)

type vehicleApiController struct {
	controllers.BaseAPIController
}

func InitVehicleApiRouters(app *fiber.App) {
	controller := vehicleApiController{}
	app.Route("vehicles", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

func (c *vehicleApiController) list(ctx *fiber.Ctx) error {
	list, err := vehicle.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *vehicleApiController) create(ctx *fiber.Ctx) error {
	var payload vehicleapimodels.VehicleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vehicle.Instance.Create(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *vehicleApiController) update(ctx *fiber.Ctx) error {
	var payload vehicleapimodels.VehicleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := vehicle.Instance.Update(ctx.Params("id"), payload); err != nil {
		return vehicleFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *vehicleApiController) delete(ctx *fiber.Ctx) error {
	if err := vehicle.Instance.Delete(ctx.Params("id")); err != nil {
		return vehicleFail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func vehicleFail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, vehicle.ErrVehicleNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusInternalServerError)
}
