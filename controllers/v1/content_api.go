package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/content"
	apimodels "volonterka-backend/models/api"
	contentapimodels "volonterka-backend/models/api/content"
)

type contentApiController struct {
	controllers.BaseAPIController
}

func InitContentApiRouters(app *fiber.App) {
	controller := contentApiController{}
	app.Route("content", func(router fiber.Router) {
		router.Get("articles", controller.listArticles)
		router.Post("articles", controller.createArticle)
		router.Put("articles/:id", controller.updateArticle)
		router.Delete("articles/:id", controller.deleteArticle)
		router.Get("media", controller.listMedia)
		router.Post("media", controller.createMedia)
		router.Delete("media/:id", controller.deleteMedia)
		router.Get("documents", controller.listDocuments)
		router.Post("documents", controller.createDocument)
		router.Delete("documents/:id", controller.deleteDocument)
	})
}

func (c *contentApiController) listArticles(ctx *fiber.Ctx) error {
	list, err := content.Instance.ListArticles()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *contentApiController) createArticle(ctx *fiber.Ctx) error {
	var payload contentapimodels.ArticleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := content.Instance.CreateArticle(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *contentApiController) updateArticle(ctx *fiber.Ctx) error {
	var payload contentapimodels.ArticleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := content.Instance.UpdateArticle(ctx.Params("id"), payload); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *contentApiController) deleteArticle(ctx *fiber.Ctx) error {
	if err := content.Instance.DeleteArticle(ctx.Params("id")); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *contentApiController) listMedia(ctx *fiber.Ctx) error {
	list, err := content.Instance.ListMediaLinks()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *contentApiController) createMedia(ctx *fiber.Ctx) error {
	var payload contentapimodels.MediaLinkRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := content.Instance.CreateMediaLink(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *contentApiController) deleteMedia(ctx *fiber.Ctx) error {
	if err := content.Instance.DeleteMediaLink(ctx.Params("id")); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *contentApiController) listDocuments(ctx *fiber.Ctx) error {
	list, err := content.Instance.ListDocuments()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *contentApiController) createDocument(ctx *fiber.Ctx) error {
	var payload contentapimodels.DocumentRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := content.Instance.CreateDocument(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *contentApiController) deleteDocument(ctx *fiber.Ctx) error {
	if err := content.Instance.DeleteDocument(ctx.Params("id")); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
