package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/export"
	apimodels "volonterka-backend/models/api"
	exportapimodels "volonterka-backend/models/api/export"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Post("", controller.export)
	})
}

func (c *exportApiController) export(ctx *fiber.Ctx) error {
	var payload exportapimodels.Request
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := export.Instance.Export(payload)
	if err != nil {
		if errors.Is(err, export.ErrInvalidSelection) || errors.Is(err, export.ErrUnknownFormat) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return ctx.Status(fiber.StatusOK).Send(file.Body)
}
