package userstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"volonterka-backend/models"
	dbmodels "volonterka-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (*dbmodels.User, error)
	FindByEmail(email string) (*dbmodels.User, error)
	Update(id string, updMap map[string]interface{}) error
	ListApplicants() ([]dbmodels.User, error)
	ListApprovedDonors() ([]dbmodels.User, error)
	ListAdministrators() ([]dbmodels.User, error)
	CreateAudit(rec dbmodels.UserAuditRecord) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	if rec.Email == "" {
		return "", errors.New("email не вказано")
	}
	existing, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("користувач із такою поштою вже існує")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListApplicants() ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	err := i.db.
		Where("role = ?", models.UserRoleDonor).
		Where("status IN ?", []models.UserStatus{models.UserStatusPending, models.UserStatusRejected}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListApprovedDonors() ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	err := i.db.
		Where("role = ?", models.UserRoleDonor).
		Where("status = ?", models.UserStatusApproved).
		Order("approved_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAdministrators() ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	err := i.db.
		Where("role = ?", models.UserRoleAdmin).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateAudit(rec dbmodels.UserAuditRecord) error {
	return i.db.
		Save(&rec).
		Error
}
