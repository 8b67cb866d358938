package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/fundraising"
	apimodels "volonterka-backend/models/api"
	fundraisingapimodels "volonterka-backend/models/api/fundraising"
)

type fundraisingApiController struct {
	controllers.BaseAPIController
}

func InitFundraisingApiRouters(app *fiber.App) {
	controller := fundraisingApiController{}
	app.Route("fundraising", func(router fiber.Router) {
		router.Get("totals", controller.totals)
		router.Get("goals", controller.listGoals)
		router.Post("goals", controller.createGoal)
		router.Put("goals/:id", controller.updateGoal)
		router.Delete("goals/:id", controller.deleteGoal)
		router.Get("bank-accounts", controller.listBankAccounts)
		router.Post("bank-accounts", controller.createBankAccount)
		router.Put("bank-accounts/:id", controller.updateBankAccount)
		router.Delete("bank-accounts/:id", controller.deleteBankAccount)
	})
}

func (c *fundraisingApiController) totals(ctx *fiber.Ctx) error {
	totals, err := fundraising.Instance.GetTotals()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(totals))
}

func (c *fundraisingApiController) listGoals(ctx *fiber.Ctx) error {
	list, err := fundraising.Instance.ListGoals()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *fundraisingApiController) createGoal(ctx *fiber.Ctx) error {
	var payload fundraisingapimodels.GoalRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := fundraising.Instance.CreateGoal(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *fundraisingApiController) updateGoal(ctx *fiber.Ctx) error {
	var payload fundraisingapimodels.GoalRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := fundraising.Instance.UpdateGoal(ctx.Params("id"), payload); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *fundraisingApiController) deleteGoal(ctx *fiber.Ctx) error {
	if err := fundraising.Instance.DeleteGoal(ctx.Params("id")); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *fundraisingApiController) listBankAccounts(ctx *fiber.Ctx) error {
	list, err := fundraising.Instance.ListBankAccounts()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *fundraisingApiController) createBankAccount(ctx *fiber.Ctx) error {
	var payload fundraisingapimodels.BankAccountRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := fundraising.Instance.CreateBankAccount(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *fundraisingApiController) updateBankAccount(ctx *fiber.Ctx) error {
	var payload fundraisingapimodels.BankAccountRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := fundraising.Instance.UpdateBankAccount(ctx.Params("id"), payload); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

func (c *fundraisingApiController) deleteBankAccount(ctx *fiber.Ctx) error {
	if err := fundraising.Instance.DeleteBankAccount(ctx.Params("id")); err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
