package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/content"
	"volonterka-backend/lib/donation"
	"volonterka-backend/lib/feedback"
	"volonterka-backend/lib/fundraising"
	pendingactions "volonterka-backend/lib/pending-actions"
	"volonterka-backend/lib/review"
	"volonterka-backend/lib/vehicle"
	apimodels "volonterka-backend/models/api"
	feedbackapimodels "volonterka-backend/models/api/feedback"
	fundraisingapimodels "volonterka-backend/models/api/fundraising"
	reviewapimodels "volonterka-backend/models/api/review"
	dbmodels "volonterka-backend/models/db"
)

const publicListLimit = 20

type publicApiController struct {
	controllers.BaseAPIController
}

func InitPublicApiRouters(app *fiber.App) {
	controller := publicApiController{}
	app.Route("public", func(router fiber.Router) {
		router.Get("summary", controller.summary)
		router.Get("donations", controller.donations)
		router.Get("reviews", controller.reviews)
		router.Get("vehicles", controller.vehicles)
		router.Get("articles", controller.articles)
		router.Get("media", controller.media)
		router.Get("documents", controller.documents)
		router.Get("bank-accounts", controller.bankAccounts)
		router.Post("donations", controller.submitDonation)
		router.Post("volunteers", controller.submitVolunteer)
		router.Post("reviews", controller.submitReview)
		router.Post("feedback", controller.submitFeedback)
	})
}

type publicSummary struct {
	Totals       fundraisingapimodels.Totals            `json:"totals"`
	ActiveGoal   *fundraisingapimodels.GoalView         `json:"active_goal,omitempty"`
	BankAccounts []fundraisingapimodels.BankAccountView `json:"bank_accounts"`
}

func (c *publicApiController) summary(ctx *fiber.Ctx) error {
	totals, err := fundraising.Instance.GetTotals()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	goal, err := fundraising.Instance.GetActiveGoal()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	accounts, err := fundraising.Instance.ListBankAccounts()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(publicSummary{
		Totals:       totals,
		ActiveGoal:   goal,
		BankAccounts: accounts,
	}))
}

func (c *publicApiController) donations(ctx *fiber.Ctx) error {
	list, err := donation.Instance.ListPublic(pageLimit(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *publicApiController) reviews(ctx *fiber.Ctx) error {
	list, err := review.Instance.ListPublic(pageLimit(ctx))
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func pageLimit(ctx *fiber.Ctx) int {
	limit := ctx.QueryInt("limit", publicListLimit)
	if limit < 1 || limit > 100 {
		return publicListLimit
	}
	return limit
}

func (c *publicApiController) vehicles(ctx *fiber.Ctx) error {
	list, err := vehicle.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *publicApiController) articles(ctx *fiber.Ctx) error {
	list, err := content.Instance.ListArticles()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *publicApiController) media(ctx *fiber.Ctx) error {
	list, err := content.Instance.ListMediaLinks()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *publicApiController) documents(ctx *fiber.Ctx) error {
	list, err := content.Instance.ListDocuments()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *publicApiController) bankAccounts(ctx *fiber.Ctx) error {
	list, err := fundraising.Instance.ListBankAccounts()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// Публічні внески та анкети не потрапляють у базу напряму,
// вони стають у чергу модерації до рішення адміністратора.
func (c *publicApiController) submitDonation(ctx *fiber.Ctx) error {
	var payload dbmodels.DonationPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := pendingactions.Instance.Queue(nil, dbmodels.PendingPayload{Donation: &payload}, "public-site")
	if err != nil {
		return submitFail(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(apimodels.NewResponse(id))
}

func (c *publicApiController) submitVolunteer(ctx *fiber.Ctx) error {
	var payload dbmodels.VolunteerPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := pendingactions.Instance.Queue(nil, dbmodels.PendingPayload{Volunteer: &payload}, "public-site")
	if err != nil {
		return submitFail(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(apimodels.NewResponse(id))
}

func submitFail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, pendingactions.ErrInvalidPayload) || errors.Is(err, pendingactions.ErrUnsupportedEntity) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.SendStatus(fiber.StatusInternalServerError)
}

func (c *publicApiController) submitReview(ctx *fiber.Ctx) error {
	var payload reviewapimodels.ReviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := review.Instance.Submit(payload, nil)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *publicApiController) submitFeedback(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FeedbackRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := feedback.Instance.Submit(payload)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
