package db

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"volonterka-backend/config"
	"volonterka-backend/models"
	dbmodels "volonterka-backend/models/db"
)

// InitPreload гарантує наявність кореневого облікового запису адміністратора.
func InitPreload() {
	if err := ensureAdminAccount(); err != nil {
		log.WithError(err).Fatal("Не вдалося створити обліковий запис адміністратора")
	}
}

func ensureAdminAccount() error {
	email := config.Conf.Admin.Email
	password := config.Conf.Admin.Password
	if email == "" || password == "" {
		return errors.New("ADMIN_EMAIL та ADMIN_PASSWORD повинні бути вказані в змінних середовища")
	}

	rec := dbmodels.User{}
	err := DB.Where("email = ?", email).First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		if rec.Status == models.UserStatusApproved && rec.Role == models.UserRoleAdmin {
			return nil
		}
		updMap := map[string]interface{}{
			"Role":   models.UserRoleAdmin,
			"Status": models.UserStatusApproved,
		}
		if rec.ApprovedAt == nil {
			now := time.Now()
			updMap["ApprovedAt"] = &now
		}
		return DB.Model(&dbmodels.User{}).Where("id = ?", rec.ID).Updates(updMap).Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "помилка хешування пароля")
	}
	now := time.Now()
	rec = dbmodels.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusApproved,
		FullName:     "Адміністратор",
		ApprovedAt:   &now,
		CreatedVia:   "bootstrap",
	}
	if err := DB.Save(&rec).Error; err != nil {
		return err
	}
	log.WithField("email", email).Info("Створено обліковий запис адміністратора")
	return nil
}
