package initializers

import (
	"context"

	"volonterka-backend/config"
	"volonterka-backend/fiberlog"
	"volonterka-backend/lib/content"
	"volonterka-backend/lib/donation"
	"volonterka-backend/lib/export"
	"volonterka-backend/lib/feedback"
	filestorage "volonterka-backend/lib/file-storage"
	"volonterka-backend/lib/fundraising"
	pendingactions "volonterka-backend/lib/pending-actions"
	"volonterka-backend/lib/review"
	"volonterka-backend/lib/users"
	"volonterka-backend/lib/vehicle"
	"volonterka-backend/lib/volunteer"
	"volonterka-backend/lib/withdrawal"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	filestorage.NewHandler()
	users.NewHandler()
	donation.NewHandler()
	volunteer.NewHandler()
	withdrawal.NewHandler()
	fundraising.NewHandler()
	vehicle.NewHandler()
	content.NewHandler()
	review.NewHandler()
	feedback.NewHandler()
	pendingactions.NewHandler()
	export.NewHandler()
}
