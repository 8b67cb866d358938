package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/config"
	apiv1 "volonterka-backend/controllers/v1"
	"volonterka-backend/db"
	"volonterka-backend/fiberlog"
	"volonterka-backend/initializers"
	"volonterka-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitPublicApiRouters(apiV1)
	apiv1.InitProofUploadRouters(apiV1)

	//адмінка
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired())
	admin.Use(middleware.AdminRole())
	apiv1.InitDashboardApiRouters(admin)
	apiv1.InitPendingActionsApiRouters(admin)
	apiv1.InitExportApiRouters(admin)
	apiv1.InitDonationApiRouters(admin)
	apiv1.InitWithdrawalApiRouters(admin)
	apiv1.InitUserApiRouters(admin)
	apiv1.InitVolunteerApiRouters(admin)
	apiv1.InitVehicleApiRouters(admin)
	apiv1.InitFundraisingApiRouters(admin)
	apiv1.InitContentApiRouters(admin)
	apiv1.InitReviewApiRouters(admin)
	apiv1.InitFeedbackApiRouters(admin)
	apiv1.InitFileApiRouters(admin)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
