package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"volonterka-backend/controllers"
	"volonterka-backend/lib/donation"
	"volonterka-backend/lib/fundraising"
	pendingactions "volonterka-backend/lib/pending-actions"
	"volonterka-backend/lib/volunteer"
	"volonterka-backend/lib/withdrawal"
	apimodels "volonterka-backend/models/api"
	donationapimodels "volonterka-backend/models/api/donation"
	fundraisingapimodels "volonterka-backend/models/api/fundraising"
	volunteerapimodels "volonterka-backend/models/api/volunteer"
	withdrawalapimodels "volonterka-backend/models/api/withdrawal"
)

const dashboardRecentLimit = 5

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Get("", controller.dashboard)
	})
}

type dashboardView struct {
	Totals            fundraisingapimodels.Totals          `json:"totals"`
	PendingCount      int64                                `json:"pending_count"`
	RecentDonations   []donationapimodels.DonationView     `json:"recent_donations"`
	RecentWithdrawals []withdrawalapimodels.WithdrawalView `json:"recent_withdrawals"`
	RecentVolunteers  []volunteerapimodels.VolunteerView   `json:"recent_volunteers"`
}

func (c *dashboardApiController) dashboard(ctx *fiber.Ctx) error {
	totals, err := fundraising.Instance.GetTotals()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	pendingCount, err := pendingactions.Instance.CountPending()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	donations, err := donation.Instance.List()
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	if len(donations) > dashboardRecentLimit {
		donations = donations[:dashboardRecentLimit]
	}
	withdrawals, err := withdrawal.Instance.ListRecent(dashboardRecentLimit)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	volunteers, err := volunteer.Instance.ListRecent(dashboardRecentLimit)
	if err != nil {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(dashboardView{
		Totals:            totals,
		PendingCount:      pendingCount,
		RecentDonations:   donations,
		RecentWithdrawals: withdrawals,
		RecentVolunteers:  volunteers,
	}))
}
