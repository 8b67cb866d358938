package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "volonterka-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск міграцій")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"UserAuditRecord", &dbmodels.UserAuditRecord{}},
		{"Donation", &dbmodels.Donation{}},
		{"Volunteer", &dbmodels.Volunteer{}},
		{"Withdrawal", &dbmodels.Withdrawal{}},
		{"FundraisingGoal", &dbmodels.FundraisingGoal{}},
		{"BankAccount", &dbmodels.BankAccount{}},
		{"Vehicle", &dbmodels.Vehicle{}},
		{"Article", &dbmodels.Article{}},
		{"MediaLink", &dbmodels.MediaLink{}},
		{"Document", &dbmodels.Document{}},
		{"DonorReview", &dbmodels.DonorReview{}},
		{"VolunteerFeedback", &dbmodels.VolunteerFeedback{}},
		{"PendingAction", &dbmodels.PendingAction{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "помилка створення структури %s", m.name)
		}
	}
	log.Info("Міграція пройшла успішно")
	return nil
}
