package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/controllers"
	filestorage "volonterka-backend/lib/file-storage"
	"volonterka-backend/lib/users"
	authutils "volonterka-backend/lib/utils/auth-utils"
	"volonterka-backend/middleware"
	apimodels "volonterka-backend/models/api"
)

type uploadApiController struct {
	controllers.BaseAPIController
}

// InitProofUploadRouters - завантаження підтвердження внеску самим донатором.
func InitProofUploadRouters(app *fiber.App) {
	controller := uploadApiController{}
	app.Route("uploads", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired()).Post("proof", controller.uploadProof)
	})
}

// InitFileApiRouters - файлові операції адміністратора.
func InitFileApiRouters(app *fiber.App) {
	controller := uploadApiController{}
	app.Route("uploads", func(router fiber.Router) {
		router.Post("vehicle-image", controller.uploadVehicleImage)
		router.Get("*", controller.download)
	})
}

func (c *uploadApiController) uploadProof(ctx *fiber.Ctx) error {
	file, err := readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	storedPath, err := filestorage.Instance.UploadProof(ctx.Context(), file.data, file.name)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	if err := users.Instance.UpdateProofPath(authutils.GetUserID(ctx), storedPath); err != nil {
		log.WithError(err).Error("Помилка збереження шляху підтвердження")
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(storedPath))
}

func (c *uploadApiController) uploadVehicleImage(ctx *fiber.Ctx) error {
	file, err := readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	storedPath, err := filestorage.Instance.UploadVehicleImage(ctx.Context(), file.data, file.name)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(storedPath))
}

func (c *uploadApiController) download(ctx *fiber.Ctx) error {
	storedPath := ctx.Params("*")
	if storedPath == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("шлях до файлу не вказано"))
	}
	data, err := filestorage.Instance.GetFile(ctx.Context(), storedPath)
	if err != nil {
		return ctx.SendStatus(fiber.StatusNotFound)
	}
	return ctx.Status(fiber.StatusOK).Send(data)
}

type formFile struct {
	name string
	data []byte
}

func readFormFile(ctx *fiber.Ctx) (formFile, error) {
	header, err := ctx.FormFile("file")
	if err != nil {
		return formFile{}, err
	}
	src, err := header.Open()
	if err != nil {
		return formFile{}, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return formFile{}, err
	}
	return formFile{name: header.Filename, data: data}, nil
}
