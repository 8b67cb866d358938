package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/users"
	authutils "volonterka-backend/lib/utils/auth-utils"
	"volonterka-backend/middleware"
	apimodels "volonterka-backend/models/api"
	authapimodels "volonterka-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("admin-login", controller.adminLogin)
		router.Post("register", controller.register)
		router.Post("refresh", controller.refresh)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := users.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return authFail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *authApiController) adminLogin(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := users.Instance.LoginAdmin(payload.Email, payload.Password)
	if err != nil {
		return authFail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := users.Instance.Register(payload)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := users.Instance.Refresh(payload.RefreshToken)
	if err != nil {
		return authFail(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *authApiController) me(ctx *fiber.Ctx) error {
	userID := authutils.GetUserID(ctx)
	resp, err := users.Instance.GetByID(userID)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func authFail(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, users.ErrBadCredentials):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, users.ErrNotApproved),
		errors.Is(err, users.ErrBanned),
		errors.Is(err, users.ErrRestricted),
		errors.Is(err, users.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusInternalServerError)
}
